package domain

import "time"

// NoticeKind distinguishes the transient success toast from the blocking error alert.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

const (
	SuccessNoticeText = "Form submitted successfully!"
	ErrorNoticeText   = "Error submitting form. Please try again."
)

// Notice is a user-visible message raised by a submit attempt.
// TTL of zero means the notice stays until dismissed.
type Notice struct {
	Kind    NoticeKind
	Text    string
	ShownAt time.Time
	TTL     time.Duration
}

// Expired reports whether a transient notice has outlived its TTL at now.
func (n Notice) Expired(now time.Time) bool {
	if n.TTL <= 0 {
		return false
	}
	return !now.Before(n.ShownAt.Add(n.TTL))
}

// SubmitState is the controller's position in the submit flow.
type SubmitState string

const (
	StateIdle       SubmitState = "idle"
	StateValidating SubmitState = "validating"
	StateSubmitting SubmitState = "submitting"
)

// Acknowledgement is what the endpoint returned for an accepted submission.
type Acknowledgement struct {
	StatusCode int
	Message    string
}

// Storage keys shared by every backend.
const (
	DraftStorageKey = "myFormData"
	ThemeStorageKey = "theme"
)
