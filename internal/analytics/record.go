package analytics

// GameRecord is one cleaned catalog entry. Raw cell text from the source
// table is normalized into typed fields; the original Plays token is kept
// for display (charts annotate it next to the exact count).
type GameRecord struct {
	Row         int      // 1-based position among data rows
	Title       string
	ReleaseDate string
	Developers  []string
	Platforms   []string
	Genres      []string
	Rating      float64
	Rated       bool // false when the rating cell is blank or unparseable
	Plays       string
	PlayCount   int64
	Playing     int64
	Backlogs    int64
	Wishlist    int64
	Lists       int64
	Reviews     int64
}

// GenreAggregate accumulates per-genre totals across the whole library.
// A game tagged with N genres contributes its full play count and rating
// to each of the N aggregates; counts are never split between genres.
type GenreAggregate struct {
	Genre      string
	TotalPlays int64
	GameCount  int
	RatedCount int
	MeanRating float64 // mean over rated games only; zero when RatedCount == 0
}

// LibraryStats summarizes the dataset as a whole.
type LibraryStats struct {
	TotalGames    int
	TotalPlays    int64
	AverageRating float64
	HighestRating float64
	LowestRating  float64
	UniqueGenres  int
}

// CombinedEntry joins a genre's play-count ranking with its mean rating.
// Genres without a single rated game never appear in the join.
type CombinedEntry struct {
	Genre      string
	TotalPlays int64
	MeanRating float64
}
