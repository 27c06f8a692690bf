package sources

import (
	"context"
	"errors"
	"fmt"

	"github.com/kerbaras/champions/pkg/config"
	"github.com/kerbaras/champions/pkg/data"
	"github.com/kerbaras/champions/pkg/utils"
)

var ErrUnknownSource = errors.New("unknown champion source")

type Source interface {
	Name() string
	ListChampions(ctx context.Context) ([]data.Champion, error)
}

// New builds the source selected in cfg.
func New(cfg *config.Config) (Source, error) {
	switch cfg.Source {
	case config.SourceSampleAPIs:
		return NewSampleAPIs(utils.NewAPI(cfg.APIURL, cfg.HTTPTimeout)), nil
	case config.SourceDataDragon:
		return NewDataDragon(utils.NewAPI(cfg.DDragonURL, cfg.HTTPTimeout), cfg.DDragonURL, cfg.Language), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}
