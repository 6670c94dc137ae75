// Package workflow drives one order form from opening to submission. A Controller is
// a single workflow instance: it owns its catalog snapshot, classifies weights against
// it, validates the form locally and submits create or status-update requests,
// reporting every outcome as a toast.
//
// Instances are isolated from each other; the Registry keeps the open ones keyed by id.
// Closing an instance invalidates every request it still has in flight: their results
// are discarded when they arrive.
package workflow
