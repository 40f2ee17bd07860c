package services

import "errors"

var (
	// ErrNoSummary means no pipeline run has persisted an insight yet.
	ErrNoSummary = errors.New("no summary insight available")

	// ErrNoData means the uploaded file parsed but held zero usable rows.
	ErrNoData = errors.New("no usable rows in upload")

	// ErrInvalidFileType means the upload extension is not supported.
	ErrInvalidFileType = errors.New("invalid file type")
)
