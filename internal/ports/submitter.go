package ports

import (
	"context"

	"github.com/aalvaropc/formdraft/internal/domain"
)

// Submitter delivers a Draft to the submission endpoint.
// A non-2xx answer is an error; the returned Acknowledgement is only meaningful on success.
type Submitter interface {
	Submit(ctx context.Context, draft domain.Draft) (domain.Acknowledgement, error)
}
