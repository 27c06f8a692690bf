package sources

import (
	"context"
	"fmt"

	"github.com/kerbaras/champions/pkg/data"
	"github.com/kerbaras/champions/pkg/utils"
)

type Champion struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Blurb   string   `json:"blurb"`
	Partype string   `json:"partype"`
	Tags    []string `json:"tags"`
	Image   struct {
		Full    string `json:"full"`
		Loading string `json:"loading"`
	} `json:"image"`
	Stats Stats `json:"stats"`
}

type Stats struct {
	HP           float64 `json:"hp"`
	AttackDamage float64 `json:"attackdamage"`
	Armor        float64 `json:"armor"`
	SpellBlock   float64 `json:"spellblock"`
	MoveSpeed    float64 `json:"movespeed"`
	AttackRange  float64 `json:"attackrange"`
}

func (s Stats) ToStats() data.Stats {
	return data.Stats{
		HP:           s.HP,
		AttackDamage: s.AttackDamage,
		Armor:        s.Armor,
		SpellBlock:   s.SpellBlock,
		MoveSpeed:    s.MoveSpeed,
		AttackRange:  s.AttackRange,
	}
}

func (c *Champion) ToChampion() data.Champion {
	return data.Champion{
		ID:      c.ID,
		Name:    c.Name,
		Title:   c.Title,
		Blurb:   c.Blurb,
		Partype: c.Partype,
		Tags:    c.Tags,
		Image: data.Image{
			Full:    c.Image.Full,
			Loading: c.Image.Loading,
		},
		Stats: c.Stats.ToStats(),
	}
}

// SampleAPIs reads the champion array served by sampleapis.assimilate.be.
// The endpoint has no pagination and no auth.
type SampleAPIs struct {
	api *utils.API
}

func NewSampleAPIs(api *utils.API) *SampleAPIs {
	return &SampleAPIs{api: api}
}

func (s *SampleAPIs) Name() string {
	return "sampleapis"
}

func (s *SampleAPIs) ListChampions(ctx context.Context) ([]data.Champion, error) {
	var champions []Champion
	if err := s.api.Get(ctx, "", nil, &champions); err != nil {
		return nil, fmt.Errorf("failed to fetch champions: %w", err)
	}
	out := make([]data.Champion, len(champions))
	for i, champion := range champions {
		out[i] = champion.ToChampion()
	}
	return out, nil
}
