// Package commands contains the operations that change order state on the backend.
// Each command is validated at construction and carries the bearer token of the
// session that issues it; handlers translate backend rejections into
// *errs.SubmissionError carrying the backend's text.
package commands
