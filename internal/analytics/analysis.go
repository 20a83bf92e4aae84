package analytics

import (
	"sort"
	"strings"

	"gamelens/internal/genre"
)

// Analysis is the transform result: cleaned records in source order and
// genre aggregates ordered by total plays. All query methods return copies,
// so callers may re-sort or truncate without disturbing each other.
type Analysis struct {
	Records  []GameRecord
	Genres   []GenreAggregate // ordered by TotalPlays descending, ties by name
	Warnings int

	stats LibraryStats
}

// MostPlayed returns the record with the highest normalized play count.
// Ties keep the first occurrence in source row order. The second return is
// false when the analysis holds no records.
func (a *Analysis) MostPlayed() (GameRecord, bool) {
	if len(a.Records) == 0 {
		return GameRecord{}, false
	}

	best := 0
	for i := 1; i < len(a.Records); i++ {
		if a.Records[i].PlayCount > a.Records[best].PlayCount {
			best = i
		}
	}
	return a.Records[best], true
}

// TopGenres returns up to n genres ranked by total plays. n <= 0 means all.
func (a *Analysis) TopGenres(n int) []GenreAggregate {
	out := make([]GenreAggregate, len(a.Genres))
	copy(out, a.Genres)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// RatingByGenre maps every genre with at least one rated game to its mean
// rating. Genres whose games are all unrated are absent, not zero.
func (a *Analysis) RatingByGenre() map[string]float64 {
	out := make(map[string]float64, len(a.Genres))
	for _, g := range a.Genres {
		if g.RatedCount > 0 {
			out[g.Genre] = g.MeanRating
		}
	}
	return out
}

// RatingSummary takes the top n genres by plays, drops those without rated
// games, and re-sorts by mean rating descending (ties by name). RatedCount
// on each entry is the game count reports should show.
func (a *Analysis) RatingSummary(n int) []GenreAggregate {
	top := a.TopGenres(n)
	out := make([]GenreAggregate, 0, len(top))
	for _, g := range top {
		if g.RatedCount > 0 {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanRating != out[j].MeanRating {
			return out[i].MeanRating > out[j].MeanRating
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// Combined inner-joins the top n genres by plays with the rating summary:
// genres without rated games drop out, the play-count order is kept, and
// the result is truncated to limit entries. limit <= 0 means no truncation.
func (a *Analysis) Combined(n, limit int) []CombinedEntry {
	top := a.TopGenres(n)
	out := make([]CombinedEntry, 0, len(top))
	for _, g := range top {
		if g.RatedCount == 0 {
			continue
		}
		out = append(out, CombinedEntry{
			Genre:      g.Genre,
			TotalPlays: g.TotalPlays,
			MeanRating: g.MeanRating,
		})
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopGamesForGenre returns up to n games tagged with the genre, ordered by
// play count descending with source row order breaking ties. Matching is
// case-insensitive.
func (a *Analysis) TopGamesForGenre(name string, n int) []GameRecord {
	want := genre.Clean(name)

	matches := make([]GameRecord, 0)
	for _, rec := range a.Records {
		for _, g := range rec.Genres {
			if strings.EqualFold(g, want) {
				matches = append(matches, rec)
				break
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].PlayCount > matches[j].PlayCount
	})
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// Stats returns the library-wide statistics computed during Analyze.
func (a *Analysis) Stats() LibraryStats {
	return a.stats
}
