// Package model defines shared data types used across the predictor.
//
// Conventions:
//   - Point differentials are always home minus away: outcomes, predictions,
//     and the stored market spread all use the same sign.
//   - Nullable columns (market spread, box plus/minus) are pointers; nil means
//     the value was never recorded, never zero.
//   - IDs are int64 database keys; game codes and player codes are the
//     basketball-reference string identifiers.
package model
