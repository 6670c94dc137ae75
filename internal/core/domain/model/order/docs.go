// Package order provides the shipping order as the portal composes and submits it,
// and the detail projection the backend returns when an order is inspected.
//
// Key business rules:
//   - A new order is created by its own customer with status "created"
//   - Quantity is at least 1 and the declared weight is strictly positive
//   - The package type is decided by weight classification at submission time
//   - Status labels come from the backend, which alone decides which transitions are legal
package order
