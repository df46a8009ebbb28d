package tui

import (
	"errors"

	"github.com/aalvaropc/formdraft/internal/domain"
)

// userMessage maps an error to the short text shown in the status line.
// The empty string means "nothing extra to show" (the form already renders it).
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, domain.ErrInvalidDraft):
		return ""
	case errors.Is(err, domain.ErrSubmitInFlight):
		return "Submission already in progress"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindSubmission:
			var se *domain.SubmitError
			if errors.As(err, &se) && se.StatusCode == 0 {
				return "Endpoint unreachable"
			}
			return "Endpoint rejected the submission"
		case domain.KindStorage:
			return "Could not save draft (see logs)"
		case domain.KindInvalidConfig:
			return "Invalid config"
		case domain.KindValidation:
			return "Unknown field"
		}
	}

	return "Unexpected error (see logs)"
}
