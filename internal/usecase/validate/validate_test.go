package validate

import (
	"testing"

	"github.com/aalvaropc/formdraft/internal/domain"
)

func validDraft() domain.Draft {
	return domain.Draft{
		FirstName:   "John",
		LastName:    "Brown",
		Age:         "45",
		Address:     "123 Main St",
		PlaceOfWork: "Google",
		JobTitle:    "Software Engineer",
		PhoneNumber: "1234567890",
		LinkedIn:    "https://linkedin.com/in/john",
	}
}

func TestValidateDraft_ValidHasNoErrors(t *testing.T) {
	errs := New().ValidateDraft(validDraft())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateDraft_EmptyIsAllRequired(t *testing.T) {
	errs := New().ValidateDraft(domain.EmptyDraft())
	if len(errs) != len(domain.Fields) {
		t.Fatalf("expected %d errors, got %d: %v", len(domain.Fields), len(errs), errs)
	}
	for _, f := range domain.Fields {
		if errs[f] != domain.MsgRequired {
			t.Errorf("%s: expected %q, got %q", f, domain.MsgRequired, errs[f])
		}
	}
}

func TestValidateField_Age(t *testing.T) {
	cases := []struct {
		age  string
		want string
	}{
		{"", domain.MsgRequired},
		{"   ", domain.MsgRequired},
		{"\t", domain.MsgRequired},
		{"abc", domain.MsgMustBeInteger},
		{"0", domain.MsgMustBePositive},
		{"-3", domain.MsgMustBePositive},
		{"-1.5", domain.MsgMustBePositive},
		{"2.5", domain.MsgMustBeInteger},
		{"Infinity", domain.MsgMustBeInteger},
		{"45", ""},
		{" 45 ", ""},
		{"45.0", ""},
	}

	v := New()
	for _, c := range cases {
		d := validDraft()
		d.Age = c.age
		if got := v.ValidateField(domain.FieldAge, d); got != c.want {
			t.Errorf("age %q: got %q, want %q", c.age, got, c.want)
		}
	}
}

func TestValidateField_LinkedIn(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", domain.MsgRequired},
		{"linkedin.com/in/john", ""},
		{"https://linkedin.com/in/john", ""},
		{"HTTPS://WWW.LinkedIn.com/IN/john", ""},
		{"http://linkedin.com/in/john", ""},
		{"https://example.com", domain.MsgInvalidLinkedIn},
		{"example.com", domain.MsgInvalidLinkedIn},
		{"https://not a url/in/john", domain.MsgInvalidURL},
		{"linkedin.com/in/john doe", domain.MsgInvalidURL},
		{"https://linkedin.com/in/john doe", domain.MsgInvalidURL},
		{" https://linkedin.com/in/john", domain.MsgInvalidURL},
		{"https://-/linkedin.com/in/x", domain.MsgInvalidURL},
		{"https://linkedin", domain.MsgInvalidURL},
		{"https://www.linkedin.com/in/john-doe-123/", ""},
		{"https://linkedin.com:443/in/john", ""},
	}

	v := New()
	for _, c := range cases {
		d := validDraft()
		d.LinkedIn = c.in
		if got := v.ValidateField(domain.FieldLinkedIn, d); got != c.want {
			t.Errorf("linkedin %q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidateField_SchemeIsPrependedBeforeChecks(t *testing.T) {
	v := New()

	bare := validDraft()
	bare.LinkedIn = "linkedin.com/in/john"
	full := validDraft()
	full.LinkedIn = "https://linkedin.com/in/john"

	if a, b := v.ValidateField(domain.FieldLinkedIn, bare), v.ValidateField(domain.FieldLinkedIn, full); a != b {
		t.Fatalf("bare and full URL should validate alike: %q vs %q", a, b)
	}
}

func TestValidateField_RequiredStrings(t *testing.T) {
	v := New()
	for _, f := range []domain.Field{
		domain.FieldFirstName,
		domain.FieldLastName,
		domain.FieldAddress,
		domain.FieldPlaceOfWork,
		domain.FieldJobTitle,
		domain.FieldPhoneNumber,
	} {
		d, err := validDraft().With(f, "")
		if err != nil {
			t.Fatalf("With(%s): %v", f, err)
		}
		if got := v.ValidateField(f, d); got != domain.MsgRequired {
			t.Errorf("%s: got %q, want %q", f, got, domain.MsgRequired)
		}
	}
}

func TestNormalizeLinkedIn(t *testing.T) {
	cases := map[string]string{
		"":                         "",
		"linkedin.com/in/a":        "https://linkedin.com/in/a",
		"http://linkedin.com/in/a": "http://linkedin.com/in/a",
		"HTTPS://x":                "HTTPS://x",
		"ftp://linkedin.com/in/a":  "https://ftp://linkedin.com/in/a",
	}
	for in, want := range cases {
		if got := NormalizeLinkedIn(in); got != want {
			t.Errorf("NormalizeLinkedIn(%q) = %q, want %q", in, got, want)
		}
	}
}
