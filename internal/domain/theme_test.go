package domain

import (
	"testing"
	"time"
)

func TestThemeToggleTwiceIsIdentity(t *testing.T) {
	for _, start := range []Theme{ThemeLight, ThemeDark} {
		if got := start.Toggle().Toggle(); got != start {
			t.Fatalf("double toggle from %s gave %s", start, got)
		}
	}
	if ThemeLight.Toggle() != ThemeDark {
		t.Fatalf("expected light to toggle to dark")
	}
}

func TestParseTheme(t *testing.T) {
	cases := map[string]Theme{
		"dark":   ThemeDark,
		" DARK ": ThemeDark,
		"light":  ThemeLight,
		"":       ThemeLight,
		"purple": ThemeLight,
	}
	for in, want := range cases {
		if got := ParseTheme(in); got != want {
			t.Errorf("ParseTheme(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNoticeExpired(t *testing.T) {
	shown := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	toast := Notice{Kind: NoticeSuccess, ShownAt: shown, TTL: 3 * time.Second}
	if toast.Expired(shown.Add(2 * time.Second)) {
		t.Fatalf("toast should still be visible after 2s")
	}
	if !toast.Expired(shown.Add(3 * time.Second)) {
		t.Fatalf("toast should be gone after 3s")
	}

	alert := Notice{Kind: NoticeError, ShownAt: shown}
	if alert.Expired(shown.Add(time.Hour)) {
		t.Fatalf("blocking notices never expire")
	}
}

func TestValidationStateVisible(t *testing.T) {
	v := NewValidationState()
	v.Errors[FieldAge] = MsgRequired
	if v.Visible(FieldAge) != "" {
		t.Fatalf("untouched field must not show its error")
	}
	v.Touched[FieldAge] = true
	if v.Visible(FieldAge) != MsgRequired {
		t.Fatalf("touched field should show its error")
	}

	c := v.Clone()
	c.Errors[FieldAge] = ""
	if v.Errors[FieldAge] != MsgRequired {
		t.Fatalf("clone must not share maps")
	}
	if c.HasErrors() {
		t.Fatalf("blank messages are not errors")
	}
}
