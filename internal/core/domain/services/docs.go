// Package services provides domain services that apply business rules across
// catalog entries and orders without belonging to either.
//
// The package includes:
//   - PackageClassifier: maps a declared weight to a package-type bracket
package services
