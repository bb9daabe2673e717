package models

// SubmissionStatus is the state of the submit flow of one page view.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSuccess    SubmissionStatus = "success"
	StatusError      SubmissionStatus = "error"
)

// transitions lists the allowed moves of the submit flow.
var transitions = map[SubmissionStatus][]SubmissionStatus{
	StatusIdle:       {StatusSubmitting},
	StatusSubmitting: {StatusSuccess, StatusError},
	StatusSuccess:    {StatusIdle},
	StatusError:      {StatusIdle},
}

// Valid reports whether s is one of the four known states.
func (s SubmissionStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether the flow may move from one state to another.
func CanTransition(from, to SubmissionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Settled reports whether s is a terminal state waiting to be dismissed.
func (s SubmissionStatus) Settled() bool {
	return s == StatusSuccess || s == StatusError
}
