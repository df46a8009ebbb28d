package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/formdraft/internal/usecase"
)

func cmdSubmit(s *usecase.FormSession) tea.Cmd {
	return func() tea.Msg {
		ack, err := s.Submit(context.Background())
		return submitDoneMsg{ack: ack, err: err}
	}
}

func cmdNoticeTick(after time.Duration) tea.Cmd {
	if after <= 0 {
		after = time.Second
	}
	// A small margin so the notice is already expired when the tick lands.
	return tea.Tick(after+50*time.Millisecond, func(time.Time) tea.Msg {
		return noticeTickMsg{}
	})
}
