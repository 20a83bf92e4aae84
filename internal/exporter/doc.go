// Package exporter writes the textual and tabular outputs of an analysis:
// the plain-text report, CSV rankings, and a multi-sheet XLSX workbook.
//
// All writers are deterministic given the same ReportData; the generation
// timestamp is a field on ReportData rather than a call to time.Now, so
// tests can compare whole files. CSV output optionally carries a UTF-8 BOM
// for Excel compatibility; report output uses English thousands separators
// while CSV and workbook cells stay bare for machine parsing.
//
// Chart images are the job of the chart package, not this one.
package exporter
