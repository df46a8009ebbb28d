package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/ports"
	"github.com/aalvaropc/formdraft/internal/usecase/validate"
)

const defaultSuccessTTL = 3 * time.Second

// FormSession is the state of one user session: the Draft, its validation state,
// the theme and the last notice. It mirrors the Draft to storage on every change.
//
// All methods are safe for concurrent use. Submit releases the lock while the
// request is in flight; a second Submit during that window gets ErrSubmitInFlight.
type FormSession struct {
	store     ports.KeyValueStore
	submitter ports.Submitter
	validator ports.DraftValidator
	log       *slog.Logger
	now       func() time.Time

	successTTL time.Duration

	mu     sync.Mutex
	draft  domain.Draft
	val    domain.ValidationState
	theme  domain.Theme
	notice *domain.Notice
	state  domain.SubmitState
}

type SessionOption func(*FormSession)

func WithValidator(v ports.DraftValidator) SessionOption {
	return func(s *FormSession) {
		if v != nil {
			s.validator = v
		}
	}
}

func WithLogger(l *slog.Logger) SessionOption {
	return func(s *FormSession) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) SessionOption {
	return func(s *FormSession) { s.now = now }
}

// WithSuccessTTL sets how long the success notice stays visible.
func WithSuccessTTL(d time.Duration) SessionOption {
	return func(s *FormSession) {
		if d > 0 {
			s.successTTL = d
		}
	}
}

// NewFormSession restores the Draft and theme from store, falling back to defaults.
func NewFormSession(store ports.KeyValueStore, submitter ports.Submitter, opts ...SessionOption) *FormSession {
	s := &FormSession{
		store:      store,
		submitter:  submitter,
		validator:  validate.New(),
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:        time.Now,
		successTTL: defaultSuccessTTL,
		val:        domain.NewValidationState(),
		theme:      domain.DefaultTheme,
		state:      domain.StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.draft = s.loadDraft()
	s.theme = s.loadTheme()
	s.val.Errors = s.validator.ValidateDraft(s.draft)
	return s
}

func (s *FormSession) Draft() domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Validation returns a copy of the current errors and touched flags.
func (s *FormSession) Validation() domain.ValidationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val.Clone()
}

func (s *FormSession) State() domain.SubmitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Change sets a field value, re-validates and persists the whole Draft.
// Persistence is fire-and-forget: storage failures are logged, not returned.
func (s *FormSession) Change(f domain.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.draft.With(f, value)
	if err != nil {
		return &domain.OpError{
			Op:   "session.change",
			Kind: domain.KindValidation,
			Err:  err,
		}
	}

	s.draft = d
	s.val.Errors = s.validator.ValidateDraft(d)
	s.persistDraft(d)
	return nil
}

// Blur marks a field touched so its error becomes visible.
func (s *FormSession) Blur(f domain.Field) error {
	if !f.Valid() {
		return &domain.OpError{
			Op:   "session.blur",
			Kind: domain.KindValidation,
			Err:  domain.ErrUnknownField,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.val.Touched[f] = true
	s.val.Errors = s.validator.ValidateDraft(s.draft)
	return nil
}

// Submit validates the Draft and, when valid, sends it to the endpoint.
//
// Invalid drafts touch every field and return ErrInvalidDraft without a network call.
// On success the stored draft is removed, the Draft reset and a transient notice raised.
// On failure a blocking notice is raised and the Draft is kept for a retry.
func (s *FormSession) Submit(ctx context.Context) (domain.Acknowledgement, error) {
	s.mu.Lock()
	if s.state != domain.StateIdle {
		s.mu.Unlock()
		s.log.Warn("submit.rejected.in_flight")
		return domain.Acknowledgement{}, &domain.OpError{
			Op:   "session.submit",
			Kind: domain.KindSubmission,
			Err:  domain.ErrSubmitInFlight,
		}
	}

	s.state = domain.StateValidating
	errs := s.validator.ValidateDraft(s.draft)
	s.val.Errors = errs
	for _, f := range domain.Fields {
		s.val.Touched[f] = true
	}
	if len(errs) > 0 {
		s.state = domain.StateIdle
		s.mu.Unlock()
		s.log.Info("submit.invalid", "fields", len(errs))
		return domain.Acknowledgement{}, &domain.OpError{
			Op:   "session.submit",
			Kind: domain.KindValidation,
			Err:  domain.ErrInvalidDraft,
		}
	}

	s.state = domain.StateSubmitting
	snapshot := s.draft
	s.mu.Unlock()

	ack, err := s.submitter.Submit(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.StateIdle

	if err != nil {
		s.notice = &domain.Notice{
			Kind:    domain.NoticeError,
			Text:    domain.ErrorNoticeText,
			ShownAt: s.now(),
		}
		s.log.Error("submit.failed", "err", err)
		return ack, &domain.OpError{
			Op:   "session.submit",
			Kind: domain.KindSubmission,
			Err:  err,
		}
	}

	if derr := s.store.Delete(domain.DraftStorageKey); derr != nil {
		s.log.Warn("draft.clear.failed", "err", derr)
	}
	s.draft = domain.EmptyDraft()
	s.val = domain.NewValidationState()
	s.val.Errors = s.validator.ValidateDraft(s.draft)
	s.notice = &domain.Notice{
		Kind:    domain.NoticeSuccess,
		Text:    domain.SuccessNoticeText,
		ShownAt: s.now(),
		TTL:     s.successTTL,
	}
	s.log.Info("submit.ok", "status", ack.StatusCode, "message", ack.Message)
	return ack, nil
}

// Notice returns the active notice. Expired success notices are dropped here.
func (s *FormSession) Notice() (domain.Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notice == nil {
		return domain.Notice{}, false
	}
	if s.notice.Expired(s.now()) {
		s.notice = nil
		return domain.Notice{}, false
	}
	return *s.notice, true
}

// ActiveNotice reports the notice that should be shown now without changing session state.
func (s *FormSession) ActiveNotice() (domain.Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notice == nil || s.notice.Expired(s.now()) {
		return domain.Notice{}, false
	}
	return *s.notice, true
}

func (s *FormSession) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = nil
}

func (s *FormSession) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips light/dark and persists the result under its own key.
func (s *FormSession) ToggleTheme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = s.theme.Toggle()
	if err := s.store.Set(domain.ThemeStorageKey, string(s.theme)); err != nil {
		s.log.Warn("theme.persist.failed", "theme", string(s.theme), "err", err)
	}
	return s.theme
}

func (s *FormSession) persistDraft(d domain.Draft) {
	b, err := json.Marshal(d)
	if err != nil {
		s.log.Warn("draft.persist.failed", "err", err)
		return
	}
	if err := s.store.Set(domain.DraftStorageKey, string(b)); err != nil {
		s.log.Warn("draft.persist.failed", "err", err)
	}
}

func (s *FormSession) loadDraft() domain.Draft {
	raw, ok, err := s.store.Get(domain.DraftStorageKey)
	if err != nil {
		s.log.Warn("draft.load.failed", "err", err)
		return domain.EmptyDraft()
	}
	if !ok || raw == "" || raw == "null" {
		return domain.EmptyDraft()
	}

	var d domain.Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		s.log.Warn("draft.decode.failed", "err", err)
		return domain.EmptyDraft()
	}
	return d
}

func (s *FormSession) loadTheme() domain.Theme {
	raw, ok, err := s.store.Get(domain.ThemeStorageKey)
	if err != nil {
		s.log.Warn("theme.load.failed", "err", err)
		return domain.DefaultTheme
	}
	if !ok {
		return domain.DefaultTheme
	}
	return domain.ParseTheme(raw)
}
