// Package epc2parquet converts the UK Energy Performance Certificate
// open-data archive (a zip of per-authority CSV extracts) into partitioned
// Apache Parquet output.
//
// The published documentation for the EPC extracts does not always match
// the data as encoded: identifier columns look numeric but must stay
// textual, and several columns documented as integers actually contain
// floating-point text. A hand-maintained catalog of per-column type
// overrides (pkg/schema) corrects for this; columns without an override
// are typed by inference over their observed values.
//
// # Architecture
//
// The conversion is a linear, single-threaded pipeline:
//
//   - pkg/archive selects members of the zip by glob pattern, streaming
//     each one without extracting the container.
//   - pkg/columnar parses a member's CSV into an Arrow-backed typed table
//     and serializes it as a Parquet part.
//   - internal/pipeline drives the run: one part per member, numbered
//     part-000, part-001, ... per dataset, aborting on the first failure.
//
// # Usage
//
//	epc2parquet convert all-domestic-certificates.zip ./out
//
// writes out/certificates/part-NNN.parquet and
// out/recommendations/part-NNN.parquet, one part per authority.
package epc2parquet
