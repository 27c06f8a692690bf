package sources

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/kerbaras/champions/pkg/data"
	"github.com/kerbaras/champions/pkg/utils"
)

// Definition for extracting the champion data.
type ddragonChampions struct {
	Data map[string]ddragonChampion `json:"data"`
}

type ddragonChampion struct {
	ID      string   `json:"id"`
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Blurb   string   `json:"blurb"`
	Partype string   `json:"partype"`
	Tags    []string `json:"tags"`
	Image   struct {
		Full string `json:"full"`
	} `json:"image"`
	Stats Stats `json:"stats"`
}

// DataDragon reads champions from Riot's static data CDN.
type DataDragon struct {
	api      *utils.API
	baseURL  string
	language string
}

func NewDataDragon(api *utils.API, baseURL, language string) *DataDragon {
	return &DataDragon{api: api, baseURL: baseURL, language: language}
}

func (d *DataDragon) Name() string {
	return "ddragon"
}

// LatestVersion returns the newest patch listed by the CDN.
func (d *DataDragon) LatestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := d.api.Get(ctx, "api/versions.json", nil, &versions); err != nil {
		return "", fmt.Errorf("couldn't get the current version: %w", err)
	}
	if len(versions) == 0 {
		return "", errors.New("no versions available")
	}
	return versions[0], nil
}

func (d *DataDragon) ListChampions(ctx context.Context) ([]data.Champion, error) {
	version, err := d.LatestVersion(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("cdn/%s/data/%s/champion.json", version, d.language)
	var payload ddragonChampions
	if err := d.api.Get(ctx, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch champions: %w", err)
	}

	out := make([]data.Champion, 0, len(payload.Data))
	for nameKey, champ := range payload.Data {
		id, err := strconv.Atoi(champ.Key)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q for champion %s: %w", champ.Key, nameKey, err)
		}
		out = append(out, data.Champion{
			ID:      id,
			Key:     champ.ID,
			Name:    champ.Name,
			Title:   champ.Title,
			Blurb:   champ.Blurb,
			Partype: champ.Partype,
			Tags:    champ.Tags,
			Image: data.Image{
				Full:    fmt.Sprintf("%scdn/%s/img/champion/%s", d.baseURL, version, champ.Image.Full),
				Loading: fmt.Sprintf("%scdn/img/champion/loading/%s_0.jpg", d.baseURL, champ.ID),
			},
			Stats: champ.Stats.ToStats(),
		})
	}

	// Map iteration order is random.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
