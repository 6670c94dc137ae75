package workflow

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// State is the lifecycle stage of one workflow instance.
//
// State transitions:
//
//	Idle ──> LoadingCatalogs ──┬──> Ready ──> Submitting ──┬──> Done
//	                           │      ^                    │
//	                           │      └─── (retry) ────────┤
//	                           └──> Failed <───────────────┘
//
// Reopening an instance resets it to Idle from any state but Submitting.
// A client-side validation failure leaves the state untouched.
type State int

const (
	// Idle is the state of a fresh or closed instance.
	Idle State = iota
	LoadingCatalogs
	Ready
	Submitting
	Done
	Failed
)

func getStateStrings() map[State]string {
	return map[State]string{
		Idle:            "Idle",
		LoadingCatalogs: "LoadingCatalogs",
		Ready:           "Ready",
		Submitting:      "Submitting",
		Done:            "Done",
		Failed:          "Failed",
	}
}

func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects values outside the declared states.
func (s State) Validate() error {
	if _, ok := getStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a workflow state", int(s)))
	}
	return nil
}

func transitionError(from State, to State) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("%s cannot move to %s", from, to),
	)
}

// StartLoading moves Idle to LoadingCatalogs.
func (s State) StartLoading() (State, error) {
	if s != Idle {
		return s, transitionError(s, LoadingCatalogs)
	}
	return LoadingCatalogs, nil
}

// Loaded moves LoadingCatalogs to Ready.
func (s State) Loaded() (State, error) {
	if s != LoadingCatalogs {
		return s, transitionError(s, Ready)
	}
	return Ready, nil
}

// StartSubmitting moves Ready, or Failed after a rejected submission, to Submitting.
func (s State) StartSubmitting() (State, error) {
	if s == Submitting {
		return s, ErrSubmissionInProgress
	}
	if s != Ready && s != Failed {
		return s, transitionError(s, Submitting)
	}
	return Submitting, nil
}

// Succeed moves Submitting to Done.
func (s State) Succeed() (State, error) {
	if s != Submitting {
		return s, transitionError(s, Done)
	}
	return Done, nil
}

// Fail moves LoadingCatalogs or Submitting to Failed.
func (s State) Fail() (State, error) {
	if s != LoadingCatalogs && s != Submitting {
		return s, transitionError(s, Failed)
	}
	return Failed, nil
}
