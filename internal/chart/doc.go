// Package chart renders the analysis PNGs with fogleman/gg. Text uses the
// embedded Go fonts, so no font files ship with the binary.
//
// Four standard charts cover the pipeline outputs:
//
//  1. MostPlayedChart: single highlighted bar with the exact play count
//  2. TopGenresChart: horizontal ranking, color ramp along the ranks
//  3. RatingsChart: pie and bar composite on a fixed 0-5 scale
//  4. CombinedChart: dual-axis bars (plays) and line (rating)
//
// TopGamesChart adds a per-genre ranking used by the topgames command.
//
// Rendering is deterministic: no randomness, no wall-clock reads, fixed
// canvas sizes. Empty input is a render error; callers skip chart
// generation for empty datasets rather than emitting blank canvases.
package chart
