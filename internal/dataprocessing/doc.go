// Package dataprocessing reshapes raw financial statements into clean,
// uniform tables ready for CSV export.
//
// # Canonical Layout
//
// Every statement leaves this package in the same shape: one row per
// line item, one column per reporting period. Providers deliver grids
// in either orientation, so the Normalizer detects at runtime which
// axis carries the periods (labels that parse as dates) and transposes
// when needed.
//
// # Usage
//
//	normalizer := dataprocessing.NewNormalizer()
//	stmt := normalizer.Normalize(raw, domain.StatementIncome)
//
// # Guarantees
//
// Normalization never invents or drops data:
//
//	- Line-item labels pass through verbatim
//	- Period order stays exactly as the provider delivered it
//	- Values the provider did not report remain absent, never zero
//	- An empty input produces an empty statement, not an error
//
// The transformation is pure; re-transposing the output reproduces the
// input values at every position.
//
// # Testing
//
// The package includes comprehensive tests for all components.
// Use table-driven tests when adding new functionality.
package dataprocessing
