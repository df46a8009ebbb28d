package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/ports"
)

// Submitter posts drafts to the submission endpoint.
type Submitter struct {
	endpoint string
	exec     *Executor
	log      *slog.Logger
}

type SubmitterOption func(*Submitter)

// WithExecutor swaps the executor, mostly for tests.
func WithExecutor(e *Executor) SubmitterOption {
	return func(s *Submitter) { s.exec = e }
}

func WithLogger(l *slog.Logger) SubmitterOption {
	return func(s *Submitter) {
		if l != nil {
			s.log = l
		}
	}
}

func NewSubmitter(endpoint string, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		endpoint: endpoint,
		exec:     NewExecutor(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.Submitter = (*Submitter)(nil)

func (s *Submitter) Submit(ctx context.Context, draft domain.Draft) (domain.Acknowledgement, error) {
	req, err := BuildSubmitRequest(ctx, s.endpoint, draft)
	if err != nil {
		return domain.Acknowledgement{}, err
	}

	resp, err := s.exec.Do(ctx, req)
	if err != nil {
		s.log.Warn("submit.transport.failed", "endpoint", s.endpoint, "err", err, "duration", resp.Duration)
		return domain.Acknowledgement{}, &domain.SubmitError{Err: err}
	}

	msg := ackMessage(resp.BodyBytes)
	if resp.Status < 200 || resp.Status > 299 {
		s.log.Warn("submit.rejected",
			"endpoint", s.endpoint,
			"status", resp.Status,
			"message", msg,
			"duration", resp.Duration,
		)
		return domain.Acknowledgement{StatusCode: resp.Status, Message: msg}, &domain.SubmitError{
			StatusCode: resp.Status,
			Err:        fmt.Errorf("%w: %s", domain.ErrSubmitRejected, fallback(msg, "no message")),
		}
	}

	s.log.Info("submit.ok", "endpoint", s.endpoint, "status", resp.Status, "duration", resp.Duration)
	return domain.Acknowledgement{StatusCode: resp.Status, Message: msg}, nil
}

// ackMessage pulls $.message out of a JSON body, or returns "" when absent.
func ackMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	v, err := jsonpath.Get("$.message", doc)
	if err != nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
