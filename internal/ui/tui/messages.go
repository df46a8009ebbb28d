package tui

import "github.com/aalvaropc/formdraft/internal/domain"

type submitDoneMsg struct {
	ack domain.Acknowledgement
	err error
}

// noticeTickMsg asks the view to re-check whether the success notice expired.
type noticeTickMsg struct{}
