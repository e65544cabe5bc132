// Package report renders threshold estimates for people and for tools.
//
//   - Text writes the three-line summary (mean, stddev, 95% confidence
//     interval) under a one-line run header.
//   - JSON builds an indented JSON document with the same numbers.
//
// Both accept any Summary; *estimator.Result satisfies it.
package report
