package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/infra/kvstore"
	"github.com/aalvaropc/formdraft/internal/usecase"
)

type recordingSubmitter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *recordingSubmitter) Submit(_ context.Context, _ domain.Draft) (domain.Acknowledgement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return domain.Acknowledgement{}, r.err
	}
	return domain.Acknowledgement{StatusCode: 200, Message: "Form submission received"}, nil
}

func newTestModel(t *testing.T, sub *recordingSubmitter) (model, *usecase.FormSession, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	s := usecase.NewFormSession(store, sub)
	return newModel(Deps{Session: s}), s, store
}

func typeText(m model, text string) model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}
	return m
}

func press(m model, k tea.KeyType) (model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(model), cmd
}

func TestModel_TypingUpdatesSessionDraft(t *testing.T) {
	m, s, store := newTestModel(t, &recordingSubmitter{})

	m = typeText(m, "John")
	if got := s.Draft().FirstName; got != "John" {
		t.Fatalf("expected session draft firstName=John, got %q", got)
	}
	if _, ok, _ := store.Get(domain.DraftStorageKey); !ok {
		t.Fatalf("expected draft persisted while typing")
	}

	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "Brown")
	if got := s.Draft().LastName; got != "Brown" {
		t.Fatalf("expected lastName=Brown, got %q", got)
	}
	if !s.Validation().Touched[domain.FieldFirstName] {
		t.Fatalf("leaving a field should mark it touched")
	}
}

func TestModel_ThemeToggle(t *testing.T) {
	m, s, _ := newTestModel(t, &recordingSubmitter{})

	m, _ = press(m, tea.KeyCtrlT)
	if m.theme.Name != domain.ThemeDark || s.Theme() != domain.ThemeDark {
		t.Fatalf("expected dark theme, model=%s session=%s", m.theme.Name, s.Theme())
	}
	if !strings.Contains(m.View(), "Light Mode") {
		t.Fatalf("expected toggle label to offer light mode")
	}

	m, _ = press(m, tea.KeyCtrlT)
	if m.theme.Name != domain.ThemeLight {
		t.Fatalf("expected light theme after double toggle")
	}
}

func TestModel_SubmitEmptyShowsRequired(t *testing.T) {
	sub := &recordingSubmitter{}
	m, _, _ := newTestModel(t, sub)

	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	next, _ := m.Update(cmd())
	m = next.(model)

	if sub.calls != 0 {
		t.Fatalf("expected no network call, got %d", sub.calls)
	}
	if !strings.Contains(m.View(), domain.MsgRequired) {
		t.Fatalf("expected Required errors in view")
	}
}

func TestModel_SubmitFailureShowsAlert(t *testing.T) {
	sub := &recordingSubmitter{err: &domain.SubmitError{StatusCode: 500, Err: domain.ErrSubmitRejected}}
	m, s, _ := newTestModel(t, sub)

	values := []string{"John", "Brown", "45", "123 Main St", "Google", "Software Engineer", "1234567890", "linkedin.com/in/john"}
	for i, v := range values {
		if err := s.Change(domain.Fields[i], v); err != nil {
			t.Fatalf("Change: %v", err)
		}
	}

	m, cmd := press(m, tea.KeyEnter)
	next, _ := m.Update(cmd())
	m = next.(model)

	if sub.calls != 1 {
		t.Fatalf("expected one attempt, got %d", sub.calls)
	}
	view := m.View()
	if !strings.Contains(view, domain.ErrorNoticeText) {
		t.Fatalf("expected blocking alert in view")
	}

	m, _ = press(m, tea.KeyEsc)
	if strings.Contains(m.View(), domain.ErrorNoticeText) {
		t.Fatalf("expected alert dismissed")
	}
	if s.Draft().FirstName != "John" {
		t.Fatalf("draft must survive a failed submit")
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&domain.OpError{Kind: domain.KindValidation, Err: domain.ErrInvalidDraft}, ""},
		{&domain.OpError{Kind: domain.KindSubmission, Err: domain.ErrSubmitInFlight}, "Submission already in progress"},
		{&domain.OpError{Kind: domain.KindSubmission, Err: &domain.SubmitError{Err: errors.New("refused")}}, "Endpoint unreachable"},
		{&domain.OpError{Kind: domain.KindSubmission, Err: &domain.SubmitError{StatusCode: 500}}, "Endpoint rejected the submission"},
		{errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("userMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestModel_ViewLeavesNoticeToTick(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	sub := &recordingSubmitter{}
	s := usecase.NewFormSession(kvstore.NewMemoryStore(), sub,
		usecase.WithNow(clock), usecase.WithSuccessTTL(3*time.Second))

	values := []string{"John", "Brown", "45", "123 Main St", "Google", "Software Engineer", "1234567890", "linkedin.com/in/john"}
	for i, v := range values {
		if err := s.Change(domain.Fields[i], v); err != nil {
			t.Fatalf("Change: %v", err)
		}
	}
	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	m := newModel(Deps{Session: s})
	if !strings.Contains(m.View(), domain.SuccessNoticeText) {
		t.Fatalf("expected success notice in view")
	}

	now = now.Add(5 * time.Second)
	if strings.Contains(m.View(), domain.SuccessNoticeText) {
		t.Fatalf("expired notice must not render")
	}
	next, _ := m.Update(noticeTickMsg{})
	m = next.(model)
	if strings.Contains(m.View(), domain.SuccessNoticeText) {
		t.Fatalf("expected notice gone after tick")
	}
}
