// Package forecast trains per-cohort sales regressors and rolls them
// forward into autoregressive daily forecasts.
//
// Training is pluggable: anything satisfying Trainer can supply models,
// and anything satisfying Regressor can be rolled. The default backend
// is a deterministic regularized linear model, so the whole pipeline
// stays reproducible run to run.
package forecast
