package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUploadName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"csv", "sales.csv", false},
		{"xlsx", "sales.xlsx", false},
		{"uppercase extension", "SALES.CSV", false},
		{"text file", "sales.txt", true},
		{"xls not supported", "sales.xls", true},
		{"no extension", "sales", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUploadName(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	v := NewFileValidator(nil)

	path := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,money,menu\n"), 0644))

	assert.NoError(t, v.ValidateInputFile(path))
	assert.Error(t, v.ValidateInputFile(filepath.Join(dir, "missing.csv")))
	assert.Error(t, v.ValidateInputFile(dir), "directories are rejected")

	textPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("x"), 0644))
	assert.Error(t, v.ValidateInputFile(textPath))
}

func TestValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	dir := filepath.Join(t.TempDir(), "reports", "out")
	require.NoError(t, v.ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Error(t, v.ValidateOutputDirectory("/proc/cafecast-denied"))
}
