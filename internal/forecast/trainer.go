package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"cafecast/pkg/contracts/domain"
)

const numFeatures = 6

// TrainerConfig holds the fitting parameters for the default linear
// backend.
type TrainerConfig struct {
	Epochs          int
	LearningRate    float64
	L2              float64
	HoldoutFraction float64
}

// DefaultTrainerConfig returns fitting parameters that converge on the
// scale of daily café sale counts.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Epochs:          400,
		LearningRate:    0.1,
		L2:              0.001,
		HoldoutFraction: 0.2,
	}
}

// LinearTrainer fits a ridge-regularized linear model with a learned
// offset per menu item, by full-batch gradient descent. Training is
// fully deterministic: fixed epoch count, rows consumed in input order,
// a chronological tail holdout instead of a shuffled split.
type LinearTrainer struct {
	logger *slog.Logger
	config TrainerConfig
}

// NewLinearTrainer creates a trainer with the given configuration.
func NewLinearTrainer(logger *slog.Logger, config TrainerConfig) *LinearTrainer {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Epochs <= 0 {
		config.Epochs = DefaultTrainerConfig().Epochs
	}
	if config.LearningRate <= 0 {
		config.LearningRate = DefaultTrainerConfig().LearningRate
	}
	return &LinearTrainer{logger: logger, config: config}
}

// Train fits the model to the cohort rows, reserving the chronological
// tail as a holdout used only for the logged fit quality.
func (t *LinearTrainer) Train(ctx context.Context, rows []domain.FeatureRecord) (Regressor, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to train on")
	}

	holdout := int(float64(len(rows)) * t.config.HoldoutFraction)
	if holdout >= len(rows) {
		holdout = 0
	}
	train := rows[:len(rows)-holdout]

	model := &linearModel{itemOffsets: make(map[string]float64)}
	model.fitScaling(train)

	n := float64(len(train))
	itemCounts := make(map[string]float64, len(model.itemOffsets))
	for _, row := range train {
		itemCounts[row.ItemName]++
	}

	for epoch := 0; epoch < t.config.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("training cancelled: %w", err)
		}

		var gradBias float64
		var gradWeights [numFeatures]float64
		gradOffsets := make(map[string]float64, len(itemCounts))

		for _, row := range train {
			x := model.scale(encode(row.Features()))
			residual := model.predictScaled(x, row.ItemName) - float64(row.SaleCount)
			gradBias += residual
			for i := range x {
				gradWeights[i] += residual * x[i]
			}
			gradOffsets[row.ItemName] += residual
		}

		model.bias -= t.config.LearningRate * gradBias / n
		for i := range gradWeights {
			model.weights[i] -= t.config.LearningRate * (gradWeights[i]/n + t.config.L2*model.weights[i])
		}
		for item, grad := range gradOffsets {
			model.itemOffsets[item] -= t.config.LearningRate * (grad/itemCounts[item] + t.config.L2*model.itemOffsets[item])
		}
	}

	if holdout > 0 {
		r2 := rSquared(model, rows[len(rows)-holdout:])
		t.logger.InfoContext(ctx, "model trained",
			slog.Int("train_rows", len(train)),
			slog.Int("holdout_rows", holdout),
			slog.Float64("holdout_r2", r2))
	} else {
		t.logger.InfoContext(ctx, "model trained", slog.Int("train_rows", len(train)))
	}

	return model, nil
}

// linearModel predicts bias + item offset + w·x over standardized
// numeric features.
type linearModel struct {
	bias        float64
	weights     [numFeatures]float64
	itemOffsets map[string]float64
	means       [numFeatures]float64
	scales      [numFeatures]float64
}

func encode(f domain.FeatureVector) [numFeatures]float64 {
	return [numFeatures]float64{
		float64(f.WeekdayIndex),
		float64(f.MonthIndex),
		float64(f.SaleYesterday),
		float64(f.SaleLastWeek),
		float64(f.IsWeekend),
		float64(f.IsHoliday),
	}
}

func (m *linearModel) fitScaling(rows []domain.FeatureRecord) {
	n := float64(len(rows))
	for _, row := range rows {
		x := encode(row.Features())
		for i := range x {
			m.means[i] += x[i]
		}
	}
	for i := range m.means {
		m.means[i] /= n
	}
	for _, row := range rows {
		x := encode(row.Features())
		for i := range x {
			d := x[i] - m.means[i]
			m.scales[i] += d * d
		}
	}
	for i := range m.scales {
		m.scales[i] = math.Sqrt(m.scales[i] / n)
		if m.scales[i] < 1e-9 {
			m.scales[i] = 1
		}
	}
}

func (m *linearModel) scale(x [numFeatures]float64) [numFeatures]float64 {
	for i := range x {
		x[i] = (x[i] - m.means[i]) / m.scales[i]
	}
	return x
}

func (m *linearModel) predictScaled(x [numFeatures]float64, item string) float64 {
	y := m.bias + m.itemOffsets[item]
	for i := range x {
		y += m.weights[i] * x[i]
	}
	return y
}

// Predict implements Regressor.
func (m *linearModel) Predict(f domain.FeatureVector) float64 {
	return m.predictScaled(m.scale(encode(f)), f.ItemName)
}

func rSquared(model Regressor, rows []domain.FeatureRecord) float64 {
	var mean float64
	for _, row := range rows {
		mean += float64(row.SaleCount)
	}
	mean /= float64(len(rows))

	var ssRes, ssTot float64
	for _, row := range rows {
		y := float64(row.SaleCount)
		d := y - model.Predict(row.Features())
		ssRes += d * d
		t := y - mean
		ssTot += t * t
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
