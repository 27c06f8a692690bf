package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kerbaras/champions/pkg/config"
	"github.com/kerbaras/champions/pkg/data"
	"github.com/kerbaras/champions/pkg/logger"
	"github.com/kerbaras/champions/pkg/sources"
	"github.com/kerbaras/champions/pkg/storage"
)

var ErrChampionNotFound = errors.New("champion not found")

// ChampionView is a champion plus whether the user liked it.
type ChampionView struct {
	data.Champion
	Liked bool
}

// ChampionController ties the champion source to the liked cell.
// Every read fetches the full list again; nothing is cached.
type ChampionController struct {
	source   sources.Source
	store    storage.Store
	log      *logger.Logger
	likedKey string

	// serializes read-modify-write of the liked cell
	mu sync.Mutex
}

func NewChampionController(source sources.Source, store storage.Store, log *logger.Logger, likedKey string) *ChampionController {
	if log == nil {
		log = logger.Discard()
	}
	return &ChampionController{source: source, store: store, log: log, likedKey: likedKey}
}

// NewChampionControllerWithConfig opens the configured source and store.
func NewChampionControllerWithConfig(cfg *config.Config, log *logger.Logger) (*ChampionController, error) {
	source, err := sources.New(cfg)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}
	return NewChampionController(source, store, log, cfg.LikedKey), nil
}

func (c *ChampionController) Close() error {
	return c.store.Close()
}

func (c *ChampionController) Source() sources.Source {
	return c.source
}

// FetchChampions loads the full champion list from the source.
func (c *ChampionController) FetchChampions(ctx context.Context) ([]data.Champion, error) {
	champions, err := c.source.ListChampions(ctx)
	if err != nil {
		c.log.Errorf("Error fetching champions from %s: %v", c.source.Name(), err)
		return nil, err
	}
	c.log.Infof("Fetched %d champions from %s", len(champions), c.source.Name())
	return champions, nil
}

// ListChampions returns every champion with its liked flag. An unreachable
// liked store does not fail the list; it is logged and treated as empty.
func (c *ChampionController) ListChampions(ctx context.Context) ([]ChampionView, error) {
	champions, err := c.FetchChampions(ctx)
	if err != nil {
		return nil, err
	}

	liked, err := c.LikedIDs(ctx)
	if err != nil {
		liked = data.NewLikedSet()
	}

	views := make([]ChampionView, len(champions))
	for i, champion := range champions {
		views[i] = ChampionView{Champion: champion, Liked: liked.Contains(champion.ID)}
	}
	return views, nil
}

// GetChampion finds one champion by id in a fresh list.
func (c *ChampionController) GetChampion(ctx context.Context, id int) (*data.Champion, error) {
	champions, err := c.FetchChampions(ctx)
	if err != nil {
		return nil, err
	}
	champion := data.FindChampion(champions, id)
	if champion == nil {
		return nil, fmt.Errorf("%w: %d", ErrChampionNotFound, id)
	}
	return champion, nil
}

// LikedIDs reads the liked cell. A missing or unparsable cell is an empty
// set, so the next save rewrites it; only store errors are returned.
func (c *ChampionController) LikedIDs(ctx context.Context) (*data.LikedSet, error) {
	raw, ok, err := c.store.GetItem(ctx, c.likedKey)
	if err != nil {
		c.log.Errorf("Error loading liked ids: %v", err)
		return nil, fmt.Errorf("failed to load liked ids: %w", err)
	}
	if !ok {
		return data.NewLikedSet(), nil
	}

	set, err := data.ParseLikedSet(raw)
	if err != nil {
		c.log.Errorf("Discarding unreadable liked ids %q: %v", raw, err)
		return data.NewLikedSet(), nil
	}
	return set, nil
}

func (c *ChampionController) saveLiked(ctx context.Context, set *data.LikedSet) error {
	raw, err := set.Encode()
	if err != nil {
		return err
	}
	if err := c.store.SetItem(ctx, c.likedKey, raw); err != nil {
		c.log.Errorf("Error saving liked ids: %v", err)
		return fmt.Errorf("failed to save liked ids: %w", err)
	}
	return nil
}

// ToggleLike flips id in the liked cell and reports the new state.
func (c *ChampionController) ToggleLike(ctx context.Context, id int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, err := c.LikedIDs(ctx)
	if err != nil {
		return false, err
	}

	liked := set.Toggle(id)
	if err := c.saveLiked(ctx, set); err != nil {
		return !liked, err
	}
	c.log.Infof("Champion %d liked=%t", id, liked)
	return liked, nil
}

// LikedChampions returns the stored ids intersected with a fresh list, in
// list order. With nothing liked, the source is not contacted.
func (c *ChampionController) LikedChampions(ctx context.Context) ([]data.Champion, error) {
	set, err := c.LikedIDs(ctx)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, nil
	}

	champions, err := c.FetchChampions(ctx)
	if err != nil {
		return nil, err
	}
	return set.Filter(champions), nil
}

// PruneLiked removes stored ids the source no longer returns.
func (c *ChampionController) PruneLiked(ctx context.Context) ([]int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, err := c.LikedIDs(ctx)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, nil
	}

	champions, err := c.FetchChampions(ctx)
	if err != nil {
		return nil, err
	}

	removed := set.Prune(champions)
	if len(removed) == 0 {
		return nil, nil
	}
	if err := c.saveLiked(ctx, set); err != nil {
		return nil, err
	}
	c.log.Infof("Pruned stale liked ids %v", removed)
	return removed, nil
}
