// Package catalog provides the reference data behind an order form: the customer's
// addresses, the package-type weight brackets and the status labels.
//
// The bracket list presented to users always ends with a synthetic overflow bracket
// (ID 0, unbounded weight) whose description asks the customer to arrange a special
// agreement. Classification never returns that bracket's ID; it returns
// NoStandardBracket, and Describe maps it back to the overflow description.
package catalog
