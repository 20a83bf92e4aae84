package chart

import (
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamelens/internal/analytics"
	apperrors "gamelens/internal/errors"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return r
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func fixtureGenres() []analytics.GenreAggregate {
	return []analytics.GenreAggregate{
		{Genre: "Adventure", TotalPlays: 39000, GameCount: 2, RatedCount: 2, MeanRating: 4.25},
		{Genre: "RPG", TotalPlays: 39000, GameCount: 2, RatedCount: 2, MeanRating: 4.0},
		{Genre: "Simulator", TotalPlays: 18150, GameCount: 2, RatedCount: 1, MeanRating: 3.5},
		{Genre: "Brawler", TotalPlays: 18000, GameCount: 1, RatedCount: 1, MeanRating: 4.0},
	}
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(nil)
	require.NoError(t, err)
	assert.NotNil(t, r.titleFace)
	assert.NotNil(t, r.boldFace)
	assert.NotNil(t, r.labelFace)
	assert.NotNil(t, r.smallFace)
}

func TestMostPlayedChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "most_played_game.png")
	game := analytics.GameRecord{
		Title:     "Elden Ring",
		Genres:    []string{"Adventure", "RPG"},
		Plays:     "21K",
		PlayCount: 21000,
	}

	require.NoError(t, testRenderer(t).MostPlayedChart(path, game))

	img := decodePNG(t, path)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestTopGenresChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_genres.png")
	require.NoError(t, testRenderer(t).TopGenresChart(path, fixtureGenres()))

	img := decodePNG(t, path)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestTopGenresChart_SingleGenre(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.png")
	genres := fixtureGenres()[:1]

	require.NoError(t, testRenderer(t).TopGenresChart(path, genres))
	assert.FileExists(t, path)
}

func TestRatingsChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genre_ratings.png")
	require.NoError(t, testRenderer(t).RatingsChart(path, fixtureGenres()))

	img := decodePNG(t, path)
	assert.Equal(t, 1600, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestCombinedChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined_analysis.png")
	entries := []analytics.CombinedEntry{
		{Genre: "Adventure", TotalPlays: 39000, MeanRating: 4.25},
		{Genre: "RPG", TotalPlays: 39000, MeanRating: 4.0},
		{Genre: "Simulator", TotalPlays: 18150, MeanRating: 3.5},
	}

	require.NoError(t, testRenderer(t).CombinedChart(path, entries))

	img := decodePNG(t, path)
	assert.Equal(t, 1400, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestTopGamesChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_games_rpg.png")
	games := []analytics.GameRecord{
		{Title: "Elden Ring", PlayCount: 21000},
		{Title: "Stardew Valley", PlayCount: 18000},
	}

	require.NoError(t, testRenderer(t).TopGamesChart(path, "RPG", games))

	img := decodePNG(t, path)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestCharts_EmptyInput(t *testing.T) {
	r := testRenderer(t)
	dir := t.TempDir()

	tests := []struct {
		name   string
		render func() error
	}{
		{name: "top genres", render: func() error {
			return r.TopGenresChart(filepath.Join(dir, "a.png"), nil)
		}},
		{name: "ratings", render: func() error {
			return r.RatingsChart(filepath.Join(dir, "b.png"), nil)
		}},
		{name: "combined", render: func() error {
			return r.CombinedChart(filepath.Join(dir, "c.png"), nil)
		}},
		{name: "top games", render: func() error {
			return r.TopGamesChart(filepath.Join(dir, "d.png"), "RPG", nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.render()
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeRender))
		})
	}
}

func TestCharts_StorageError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := testRenderer(t).TopGenresChart(filepath.Join(blocker, "out.png"), fixtureGenres())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
