package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"cafecast/pkg/contracts/domain"
)

// TrainSegments fits one model per cohort. Cohorts with fewer than
// minRows rows are skipped entirely: no model is produced and their
// items are later absent from forecasting. Segment fits are independent,
// so they run concurrently; each trainer call sees only its own rows.
func TrainSegments(
	ctx context.Context,
	logger *slog.Logger,
	trainer Trainer,
	segments map[domain.MenuGroup][]domain.FeatureRecord,
	minRows int,
) (ModelSet, error) {
	models := make(ModelSet, len(segments))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for group, rows := range segments {
		if len(rows) < minRows {
			logger.InfoContext(ctx, "segment skipped, not enough rows",
				slog.String("segment", string(group)),
				slog.Int("rows", len(rows)),
				slog.Int("min_rows", minRows))
			continue
		}

		g.Go(func() error {
			model, err := trainer.Train(ctx, rows)
			if err != nil {
				return fmt.Errorf("train segment %s: %w", group, err)
			}
			mu.Lock()
			models[group] = model
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models, nil
}
