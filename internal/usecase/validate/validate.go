// Package validate derives per-field error messages for a Draft.
//
// Every field runs an ordered pipeline: normalize, then structural checks, then
// semantic checks. The first stage that reports a message stops the pipeline.
package validate

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/ports"
)

var reScheme = regexp.MustCompile(`(?i)^https?://`)

const linkedInProfileMarker = "linkedin.com/in/"

// stage inspects a value and either passes it on (possibly rewritten) or stops with a message.
type stage func(v *validator.Validate, value string) (next string, msg string)

// Validator holds the per-field pipelines.
type Validator struct {
	v         *validator.Validate
	pipelines map[domain.Field][]stage
}

var _ ports.DraftValidator = (*Validator)(nil)

func New() *Validator {
	required := []stage{requireValue}

	return &Validator{
		v: validator.New(),
		pipelines: map[domain.Field][]stage{
			domain.FieldFirstName:   required,
			domain.FieldLastName:    required,
			domain.FieldAge:         {trimSpace, requireValue, ageNumber},
			domain.FieldAddress:     required,
			domain.FieldPlaceOfWork: required,
			domain.FieldJobTitle:    required,
			domain.FieldPhoneNumber: required,
			domain.FieldLinkedIn:    {prependScheme, requireValue, wellFormedURL, linkedInProfile},
		},
	}
}

// ValidateField returns the error message for f, or "" when the value is acceptable.
func (val *Validator) ValidateField(f domain.Field, d domain.Draft) string {
	stages, ok := val.pipelines[f]
	if !ok {
		return ""
	}

	value := d.Get(f)
	for _, st := range stages {
		next, msg := st(val.v, value)
		if msg != "" {
			return msg
		}
		value = next
	}
	return ""
}

// ValidateDraft validates every field. Only fields with an error are present in the result.
func (val *Validator) ValidateDraft(d domain.Draft) domain.FieldErrors {
	out := domain.FieldErrors{}
	for _, f := range domain.Fields {
		if msg := val.ValidateField(f, d); msg != "" {
			out[f] = msg
		}
	}
	return out
}

// NormalizeLinkedIn prepends https:// when a non-empty value carries no http(s) scheme.
func NormalizeLinkedIn(s string) string {
	if s == "" || reScheme.MatchString(s) {
		return s
	}
	return "https://" + s
}

func prependScheme(_ *validator.Validate, value string) (string, string) {
	return NormalizeLinkedIn(value), ""
}

func requireValue(v *validator.Validate, value string) (string, string) {
	if err := v.Var(value, "required"); err != nil {
		return value, domain.MsgRequired
	}
	return value, ""
}

// trimSpace lets a blank numeric field read as empty.
func trimSpace(_ *validator.Validate, value string) (string, string) {
	return strings.TrimSpace(value), ""
}

func ageNumber(v *validator.Validate, value string) (string, string) {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) {
		return value, domain.MsgMustBeInteger
	}
	if err := v.Var(n, "gt=0"); err != nil {
		return value, domain.MsgMustBePositive
	}
	if math.IsInf(n, 0) || n != math.Trunc(n) {
		return value, domain.MsgMustBeInteger
	}
	return value, ""
}

// wellFormedURL wants an absolute URL without whitespace whose host is a dotted domain name.
func wellFormedURL(v *validator.Validate, value string) (string, string) {
	if strings.ContainsFunc(value, unicode.IsSpace) {
		return value, domain.MsgInvalidURL
	}
	if err := v.Var(value, "url"); err != nil {
		return value, domain.MsgInvalidURL
	}
	u, err := url.Parse(value)
	if err != nil {
		return value, domain.MsgInvalidURL
	}
	if err := v.Var(u.Hostname(), "fqdn"); err != nil {
		return value, domain.MsgInvalidURL
	}
	return value, ""
}

func linkedInProfile(_ *validator.Validate, value string) (string, string) {
	if !strings.Contains(strings.ToLower(value), linkedInProfileMarker) {
		return value, domain.MsgInvalidLinkedIn
	}
	return value, ""
}
