package forecast

import (
	"context"

	"cafecast/pkg/contracts/domain"
)

// Regressor predicts a daily sale count from one feature vector. Trained
// models must be safe for concurrent Predict calls.
type Regressor interface {
	Predict(features domain.FeatureVector) float64
}

// Trainer fits a Regressor to a cohort's feature rows. The target is
// each row's SaleCount. Implementations must not share mutable state
// between concurrent Train calls.
type Trainer interface {
	Train(ctx context.Context, rows []domain.FeatureRecord) (Regressor, error)
}

// ModelSet maps each trained cohort to its model. Cohorts below the
// minimum row count are simply absent.
type ModelSet map[domain.MenuGroup]Regressor
