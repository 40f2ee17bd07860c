// Package dataprocessing turns uploaded point-of-sale tables into the
// enriched daily feature table the forecasting models train on.
//
// # Architecture
//
// The package is a chain of pure table transformations:
//
//	1. Reader: loads CSV or Excel uploads into a header row plus data rows
//	2. Schema resolver: maps arbitrary column names onto semantic roles
//	3. Cleaner: type-coerces rows into canonical RawTransaction records
//	4. Aggregator: collapses transactions into one row per (date, item)
//	5. Feature builder: adds holiday, weekend, lag and day-index features
//	6. Segmenter: labels items as high or low sellers for cohort training
//	7. Summarizer: derives the best/worst insight document for persistence
//
// # Data Flow
//
//	Upload → Reader → ResolveColumns → CleanRows → BuildDaily → AddFeatures → AssignGroups
//
// Every stage returns a new table derived from its input; no stage
// mutates the caller's slice.
//
// # Error Handling
//
// Structural problems (unresolvable required columns, malformed dates or
// money cells) abort the whole run with typed errors carrying the row and
// cell that failed. Data-sparsity conditions never surface here; they are
// absorbed downstream by the forecast package.
package dataprocessing
