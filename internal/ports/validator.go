package ports

import "github.com/aalvaropc/formdraft/internal/domain"

// DraftValidator derives field errors from draft values.
type DraftValidator interface {
	ValidateField(f domain.Field, d domain.Draft) string
	ValidateDraft(d domain.Draft) domain.FieldErrors
}
