package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names a Draft field. The value doubles as the JSON key on the wire and in storage.
type Field string

const (
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldAge         Field = "age"
	FieldAddress     Field = "address"
	FieldPlaceOfWork Field = "placeOfWork"
	FieldJobTitle    Field = "jobTitle"
	FieldPhoneNumber Field = "phoneNumber"
	FieldLinkedIn    Field = "linkedin"
)

// Fields lists every Draft field in form order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldAge,
	FieldAddress,
	FieldPlaceOfWork,
	FieldJobTitle,
	FieldPhoneNumber,
	FieldLinkedIn,
}

var fieldLabels = map[Field]string{
	FieldFirstName:   "First name",
	FieldLastName:    "Last name",
	FieldAge:         "Age",
	FieldAddress:     "Address",
	FieldPlaceOfWork: "Place of work",
	FieldJobTitle:    "Job title",
	FieldPhoneNumber: "Phone number",
	FieldLinkedIn:    "LinkedIn",
}

// Label is the human-facing placeholder for the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Valid reports whether f is one of the known Draft fields.
func (f Field) Valid() bool {
	_, ok := fieldLabels[f]
	return ok
}

// ParseField maps a user-provided name onto a Field. Matching ignores case.
func ParseField(s string) (Field, error) {
	in := strings.TrimSpace(s)
	for _, f := range Fields {
		if strings.EqualFold(string(f), in) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Draft is the in-progress set of form values. The zero value is the empty draft,
// so a Draft is always fully defined.
type Draft struct {
	FirstName   string
	LastName    string
	Age         string
	Address     string
	PlaceOfWork string
	JobTitle    string
	PhoneNumber string
	LinkedIn    string
}

// EmptyDraft returns the defaults used on first load and after a successful submit.
func EmptyDraft() Draft { return Draft{} }

// Get returns the current value of f.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return d.FirstName
	case FieldLastName:
		return d.LastName
	case FieldAge:
		return d.Age
	case FieldAddress:
		return d.Address
	case FieldPlaceOfWork:
		return d.PlaceOfWork
	case FieldJobTitle:
		return d.JobTitle
	case FieldPhoneNumber:
		return d.PhoneNumber
	case FieldLinkedIn:
		return d.LinkedIn
	default:
		return ""
	}
}

// With returns a copy of d with f set to value.
func (d Draft) With(f Field, value string) (Draft, error) {
	switch f {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldAge:
		d.Age = value
	case FieldAddress:
		d.Address = value
	case FieldPlaceOfWork:
		d.PlaceOfWork = value
	case FieldJobTitle:
		d.JobTitle = value
	case FieldPhoneNumber:
		d.PhoneNumber = value
	case FieldLinkedIn:
		d.LinkedIn = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
	return d, nil
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

type draftJSON struct {
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Age         json.RawMessage `json:"age"`
	Address     string          `json:"address"`
	PlaceOfWork string          `json:"placeOfWork"`
	JobTitle    string          `json:"jobTitle"`
	PhoneNumber string          `json:"phoneNumber"`
	LinkedIn    string          `json:"linkedin"`
}

// MarshalJSON writes age as a number when it holds one, and as a string otherwise.
func (d Draft) MarshalJSON() ([]byte, error) {
	age, err := json.Marshal(ageValue(d.Age))
	if err != nil {
		return nil, err
	}
	return json.Marshal(draftJSON{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Age:         age,
		Address:     d.Address,
		PlaceOfWork: d.PlaceOfWork,
		JobTitle:    d.JobTitle,
		PhoneNumber: d.PhoneNumber,
		LinkedIn:    d.LinkedIn,
	})
}

// UnmarshalJSON accepts age as a JSON number, string or null. Missing keys stay empty.
func (d *Draft) UnmarshalJSON(b []byte) error {
	var in draftJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	age, err := decodeAge(in.Age)
	if err != nil {
		return err
	}

	*d = Draft{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Age:         age,
		Address:     in.Address,
		PlaceOfWork: in.PlaceOfWork,
		JobTitle:    in.JobTitle,
		PhoneNumber: in.PhoneNumber,
		LinkedIn:    in.LinkedIn,
	}
	return nil
}

func ageValue(s string) any {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	return f
}

func decodeAge(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("age: %w", err)
	}
	return n.String(), nil
}
