package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video_game_analysis.xlsx")
	require.NoError(t, WriteWorkbook(path, fixtureReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Top Genres", "Genre Ratings"}, f.GetSheetList())

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Video Game Library Analysis", title)

	totalGames, err := f.GetCellValue("Summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "5", totalGames)

	mostPlayed, err := f.GetCellValue("Summary", "B13")
	require.NoError(t, err)
	assert.Equal(t, "Elden Ring", mostPlayed)

	genre, err := f.GetCellValue("Top Genres", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Adventure", genre)

	plays, err := f.GetCellValue("Top Genres", "C2")
	require.NoError(t, err)
	assert.Equal(t, "39000", plays)

	rating, err := f.GetCellValue("Genre Ratings", "C2")
	require.NoError(t, err)
	assert.Equal(t, "4.25", rating)
}

func TestWriteWorkbook_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "analysis.xlsx")
	require.NoError(t, WriteWorkbook(path, fixtureReport()))
	assert.FileExists(t, path)
}
