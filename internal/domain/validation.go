package domain

// Validation messages shown next to a field.
const (
	MsgRequired        = "Required"
	MsgMustBePositive  = "Must be positive"
	MsgMustBeInteger   = "Must be an integer"
	MsgInvalidURL      = "Must be a valid URL"
	MsgInvalidLinkedIn = "Must be a valid LinkedIn URL"
)

// FieldErrors maps a field to its current error message. Absent keys mean "no error".
type FieldErrors map[Field]string

// ValidationState is derived from a Draft: per-field errors and touched flags.
type ValidationState struct {
	Errors  FieldErrors
	Touched map[Field]bool
}

// NewValidationState returns a state with no errors and nothing touched.
func NewValidationState() ValidationState {
	return ValidationState{
		Errors:  FieldErrors{},
		Touched: map[Field]bool{},
	}
}

// Visible returns the error for f only when f has been touched.
func (v ValidationState) Visible(f Field) string {
	if !v.Touched[f] {
		return ""
	}
	return v.Errors[f]
}

// HasErrors reports whether any field carries an error.
func (v ValidationState) HasErrors() bool {
	for _, msg := range v.Errors {
		if msg != "" {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate session state.
func (v ValidationState) Clone() ValidationState {
	out := NewValidationState()
	for k, msg := range v.Errors {
		out.Errors[k] = msg
	}
	for k, t := range v.Touched {
		out.Touched[k] = t
	}
	return out
}
