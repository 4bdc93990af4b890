package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"hermannm.dev/salaries/config"
	"hermannm.dev/salaries/salaries"
)

const testCSV = `CLUB;POS SPECIFIC;NATIONALITY;AGE;GROSS P/Y
A;Striker;Spain;20;100
B;Striker;Spain;21;300
A;Defender;France;20;50
`

func fileOpener(path string) Opener {
	return NewOpener(config.Config{
		BaseConfig: config.BaseConfig{
			Source: config.SourceFile,
			File:   config.File{Path: path},
		},
	})
}

func TestRunWithCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salaries.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o600))

	opener := fileOpener(path)
	assert.Contains(t, opener.Description(), "salaries.csv")

	_, reports, err := salaries.Run(context.Background(), opener)
	require.NoError(t, err)

	club := reports[salaries.CategoryClub]
	assert.Equal(t, []string{"B", "A"}, club.Labels())
	assert.Equal(t, "300", club.Entries[0].Total.String())
	assert.Equal(t, "150", club.Entries[1].Total.String())
}

func TestRunWithXLSXFile(t *testing.T) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	rows := [][]any{
		{"CLUB", "POS SPECIFIC", "NATIONALITY", "AGE", "GROSS P/Y"},
		{"A", "Striker", "Spain", 20, 100},
		{"B", "Striker", "Spain", 21, 300},
		{"A", "Defender", "France", 20, 50},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, workbook.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "Salarios-BL-2024.xlsx")
	require.NoError(t, workbook.SaveAs(path))

	_, reports, err := salaries.Run(context.Background(), fileOpener(path))
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, reports[salaries.CategoryClub].Labels())
	age := reports[salaries.CategoryAge]
	assert.Equal(t, []string{"21", "20"}, age.Labels())
	assert.Equal(t, "300", age.Entries[0].Total.String())
	assert.Equal(t, "150", age.Entries[1].Total.String())
	assert.True(t, age.Entries[0].Key.IsNumeric())
}

func TestRunWithMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Salarios-BL-2024.xlsx")

	_, _, err := salaries.Run(context.Background(), fileOpener(path))

	var loadErr *salaries.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorContains(t, err, "Salarios-BL-2024.xlsx")
}

func TestUnsupportedExtension(t *testing.T) {
	_, _, err := fileOpener("salaries.ods").OpenSource(context.Background())
	assert.ErrorContains(t, err, ".ods")
}

func TestMissingCSVFile(t *testing.T) {
	_, _, err := fileOpener(filepath.Join(t.TempDir(), "missing.csv")).OpenSource(context.Background())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
