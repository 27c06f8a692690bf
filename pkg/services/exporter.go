package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kerbaras/champions/pkg/data"
	"github.com/kerbaras/champions/pkg/integrations"
	"github.com/kerbaras/champions/pkg/logger"
	"github.com/kerbaras/champions/pkg/utils"
)

// Exporter writes champions to an EPUB codex with their loading-screen art.
type Exporter struct {
	api    *utils.API
	scaler *integrations.PortraitScaler
	log    *logger.Logger
}

func NewExporter(api *utils.API, log *logger.Logger) *Exporter {
	if api == nil {
		api = utils.NewAPI("", 30*time.Second)
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Exporter{
		api:    api,
		scaler: integrations.NewPortraitScaler(308, 560),
		log:    log,
	}
}

// Export builds the codex at path. A portrait that cannot be downloaded is
// logged and the champion is exported without it.
func (e *Exporter) Export(ctx context.Context, title string, champions []data.Champion, path string) error {
	if len(champions) == 0 {
		return fmt.Errorf("no champions to export")
	}

	builder, err := integrations.NewCodexBuilder(title)
	if err != nil {
		return err
	}
	defer builder.Close()

	for _, champion := range champions {
		portrait, err := e.downloadPortrait(ctx, champion.Image.Loading)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			e.log.Errorf("Skipping portrait for %s: %v", champion.Name, err)
			portrait = nil
		}
		if err := builder.AddChampion(champion, portrait); err != nil {
			return fmt.Errorf("failed to add %s: %w", champion.Name, err)
		}
	}

	if err := builder.Write(path); err != nil {
		return err
	}
	e.log.Infof("Exported %d champions to %s", len(champions), path)
	return nil
}

func (e *Exporter) downloadPortrait(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("no image url")
	}

	content, err := e.api.Download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	return e.scaler.Scale(content)
}
