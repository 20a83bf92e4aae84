package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamelens/internal/config"
	apperrors "gamelens/internal/errors"
)

const fixtureCSV = `,Title,Release_Date,Developers,Summary,Platforms,Genres,Rating,Plays,Playing,Backlogs,Wishlist,Lists,Reviews
0,Elden Ring,"Feb 25, 2022","['FromSoftware']",Souls,"['Windows PC']","['Adventure', 'RPG']",4.5,21K,3.8K,4.6K,4.8K,4.4K,2.9K
1,Hades,"Dec 10, 2019","['Supergiant Games']",Roguelite,"['Windows PC']","['Adventure', 'Brawler']",4.0,18K,1.1K,2.3K,3.1K,2.2K,1.8K
2,Stardew Valley,"Feb 26, 2016","['ConcernedApe']",Farming,"['Windows PC']","['RPG', 'Simulator']",3.5,18K,1.4K,2.1K,1.9K,2.5K,1.6K
3,Unheard Gem,"Jan 1, 2021",[],Quiet,[],"['Simulator']",,150,10,20,30,5,2
4,Broken Row,"Jan 2, 2021",[],Odd,[],"['Puzzle']",niente,N/A,5,5,5,5,5
`

const unratedCSV = `,Title,Release_Date,Developers,Summary,Platforms,Genres,Rating,Plays,Playing,Backlogs,Wishlist,Lists,Reviews
0,Silent One,"Jan 1, 2020",[],A,[],"['Arcade']",,5K,1,1,1,1,1
1,Silent Two,"Jan 2, 2020",[],B,[],"['Arcade']",,3K,1,1,1,1,1
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T, csv string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "games.csv")
	require.NoError(t, os.WriteFile(input, []byte(csv), 0644))

	cfg := config.Default()
	cfg.Input.Path = input
	cfg.Output.Dir = filepath.Join(dir, "analysis")
	return cfg
}

func TestPipeline_Run(t *testing.T) {
	cfg := testConfig(t, fixtureCSV)

	p, err := New(cfg, testLogger())
	require.NoError(t, err)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Records)
	assert.Equal(t, 5, result.Genres)
	assert.Equal(t, 2, result.Warnings)
	assert.Equal(t, "Elden Ring", result.MostPlayed)
	assert.Positive(t, result.Duration)

	assert.Equal(t, config.NewPaths(cfg.Output.Dir).OutputFiles(), result.Outputs)
	for _, path := range result.Outputs {
		info, err := os.Stat(path)
		require.NoError(t, err, "expected output %s", path)
		assert.Positive(t, info.Size(), "expected non-empty output %s", path)
	}
}

func TestPipeline_Run_MissingInput(t *testing.T) {
	cfg := testConfig(t, fixtureCSV)
	cfg.Input.Path = filepath.Join(t.TempDir(), "nope.csv")

	p, err := New(cfg, testLogger())
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeInput, appErr.Type)
	assert.Equal(t, "validate", appErr.Context["stage"])
}

func TestPipeline_Run_MissingColumn(t *testing.T) {
	noGenres := `,Title,Release_Date,Developers,Summary,Platforms,Rating,Plays,Playing,Backlogs,Wishlist,Lists,Reviews
0,Elden Ring,"Feb 25, 2022",[],Souls,[],4.5,21K,1,1,1,1,1
`
	cfg := testConfig(t, noGenres)

	p, err := New(cfg, testLogger())
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeInput, appErr.Type)
	assert.Equal(t, "extract", appErr.Context["stage"])
	assert.Contains(t, appErr.Message, "Genres")
}

func TestPipeline_Run_EmptyDataset(t *testing.T) {
	headerOnly := `,Title,Release_Date,Developers,Summary,Platforms,Genres,Rating,Plays,Playing,Backlogs,Wishlist,Lists,Reviews
`
	cfg := testConfig(t, headerOnly)

	p, err := New(cfg, testLogger())
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeInput, appErr.Type)
	assert.Equal(t, "extract", appErr.Context["stage"])
}

func TestPipeline_Run_NoRatedGames(t *testing.T) {
	cfg := testConfig(t, unratedCSV)

	p, err := New(cfg, testLogger())
	require.NoError(t, err)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	// The rating views have nothing to show, so only the play-count
	// artifacts are written.
	paths := config.NewPaths(cfg.Output.Dir)
	assert.Equal(t, []string{
		paths.ReportFile,
		paths.TopGenresCSV,
		paths.GenreRatingsCSV,
		paths.WorkbookFile,
		paths.MostPlayedChart,
		paths.TopGenresChart,
	}, result.Outputs)

	assert.NoFileExists(t, paths.GenreRatingsChart)
	assert.NoFileExists(t, paths.CombinedChart)
}

func TestPipeline_Run_NoGenres(t *testing.T) {
	genreless := `,Title,Release_Date,Developers,Summary,Platforms,Genres,Rating,Plays,Playing,Backlogs,Wishlist,Lists,Reviews
0,Blank Slate,"Jan 1, 2020",[],A,[],[],4.0,5K,1,1,1,1,1
1,Empty Shelf,"Jan 2, 2020",[],B,[],[],3.0,3K,1,1,1,1,1
`
	cfg := testConfig(t, genreless)

	p, err := New(cfg, testLogger())
	require.NoError(t, err)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Records)
	assert.Equal(t, 0, result.Genres)
	assert.Equal(t, "Blank Slate", result.MostPlayed)

	// With nothing to rank, the genre charts are skipped but every
	// textual artifact and the most-played chart still land.
	paths := config.NewPaths(cfg.Output.Dir)
	assert.Equal(t, []string{
		paths.ReportFile,
		paths.TopGenresCSV,
		paths.GenreRatingsCSV,
		paths.WorkbookFile,
		paths.MostPlayedChart,
	}, result.Outputs)

	assert.NoFileExists(t, paths.TopGenresChart)
	assert.NoFileExists(t, paths.GenreRatingsChart)
	assert.NoFileExists(t, paths.CombinedChart)
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil, testLogger())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}
