package tui

import (
	"log/slog"
	"time"

	"github.com/aalvaropc/formdraft/internal/usecase"
)

type Deps struct {
	Session       *usecase.FormSession
	WorkspaceRoot string

	// NoticeTTL is how long the success notice stays; the view re-checks after it.
	NoticeTTL time.Duration

	Logger *slog.Logger
	Debug  bool
}
