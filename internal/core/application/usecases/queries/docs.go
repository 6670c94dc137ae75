// Package queries contains read operations against the backend: the reference
// catalogs an order form needs, the detail of one order and the order listing.
package queries
