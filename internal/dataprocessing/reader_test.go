package dataprocessing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	input := "date,money,coffee_name\n2024-01-01,3.5,Latte\n2024-01-02,\"1,234.50\",Mocha\n"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "money", "coffee_name"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1,234.50", table.Rows[1][1])
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,money,item\n2024-01-01,3.5,Latte\n"), 0644))

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestReadFile_Excel(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"date", "money", "item"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"2024-01-01", "3.5", "Latte"}))

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "money", "item"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Latte", table.Rows[0][2])
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := ReadFile(path)
	assert.ErrorContains(t, err, "unsupported file type")
}
