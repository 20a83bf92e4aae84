// Package pipeline orchestrates a full analysis run: validate the input
// and output locations, extract the catalog, compute the genre
// aggregation, and write every report artifact.
//
// Stages run strictly in order on the calling goroutine. The first
// failing stage aborts the run, and the stage name travels with the
// error so the command layer can report where the run died. Re-running
// with the same configuration overwrites the previous outputs in place.
package pipeline
