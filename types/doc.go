// Package types contains the core types and interfaces shared across the
// cohort library.
//
// It exists as a separate package so that internal packages can depend on
// these definitions without importing the root cohort package, avoiding
// import cycles. The root package re-exports the public subset via type
// aliases for user convenience.
package types
