// Package files owns filesystem concerns outside the core pipeline:
// storing uploads and persisting the summary insight document.
package files

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cafecast/internal/config"
	"cafecast/pkg/contracts/domain"
)

// Manager reads and writes the service's data files.
type Manager struct {
	paths config.PathsConfig
}

// NewManager creates a new file manager.
func NewManager(paths config.PathsConfig) *Manager {
	return &Manager{paths: paths}
}

// SaveUpload streams an uploaded file into the uploads directory and
// returns its path. The stored name keeps only the base of the client
// filename.
func (m *Manager) SaveUpload(src io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(m.paths.UploadsDir, 0755); err != nil {
		return "", fmt.Errorf("create uploads directory: %w", err)
	}

	dst := filepath.Join(m.paths.UploadsDir, filepath.Base(filename))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return dst, nil
}

// WriteInsight persists the summary insight document as indented JSON.
// The write goes through a temp file and rename so readers never see a
// partial document.
func (m *Manager) WriteInsight(insight domain.SalesInsight) error {
	if err := os.MkdirAll(filepath.Dir(m.paths.SummaryFile), 0755); err != nil {
		return fmt.Errorf("create summary directory: %w", err)
	}

	data, err := json.MarshalIndent(insight, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary insight: %w", err)
	}

	tmp := m.paths.SummaryFile + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write summary insight: %w", err)
	}
	if err := os.Rename(tmp, m.paths.SummaryFile); err != nil {
		return fmt.Errorf("replace summary insight: %w", err)
	}
	return nil
}

// ReadInsight loads the persisted summary insight. os.IsNotExist on the
// returned error distinguishes "no run yet" from corruption.
func (m *Manager) ReadInsight() (domain.SalesInsight, error) {
	var insight domain.SalesInsight

	data, err := os.ReadFile(m.paths.SummaryFile)
	if err != nil {
		return insight, err
	}
	if err := json.Unmarshal(data, &insight); err != nil {
		return insight, fmt.Errorf("decode summary insight: %w", err)
	}
	return insight, nil
}

// InsightExists reports whether a summary insight has been persisted.
func (m *Manager) InsightExists() bool {
	_, err := os.Stat(m.paths.SummaryFile)
	return err == nil
}
