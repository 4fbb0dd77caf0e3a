// Package core provides the row checking engine for PID redirect datasets.
//
// Each input row maps a persistent identifier (PID) and an optional document
// type to a target URL, plus an enabled flag. The package has no I/O
// dependencies beyond the URL liveness probe and can be used by the CLI,
// other frontends or tests without modification.
//
// # Flow
//
//  1. A [RowSource] yields rows as ordered (header, value) pairs.
//  2. [RowFactory.Create] builds a [Row], numbers it and runs the structural
//     checks (E01-E05).
//  3. [MarkDuplicates] flags rows repeating an earlier (PID, document type)
//     pair (E07).
//  4. [URLChecker.CheckAll] probes every remaining URL with bounded
//     concurrency (E06).
//  5. [Render] turns each row into a [ReportEntry] for presentation.
//
// [Service.Check] runs the whole flow for one dataset.
//
// # Error Codes
//
//	E01 - PID contains characters outside [A-Za-z0-9_-]
//	E02 - Document type non-empty but contains disallowed characters
//	E03 - Document type empty and empty document types not allowed
//	E04 - URL is not a syntactically valid web URI
//	E05 - Enabled field is not "0" or "1"
//	E06 - URL failed the liveness check (non-200, error or timeout)
//	E07 - Row duplicates an earlier row (same PID and document type)
//
// Errors accumulate; no check short-circuits another and no bad row aborts
// a run. Whether invalid rows fail the run is decided by [Service] from the
// IgnoreOnInvalidData setting.
package core
