// Package kernel provides the value objects shared by the portal's domain model.
//
// The package includes:
//   - ID: a backend-assigned identifier whose zero value is the "not selected" placeholder
//   - Weight: a declared shipment weight, strictly positive and finite
//
// Both are immutable and safe for concurrent use.
package kernel
