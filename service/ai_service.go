package service

import (
	"context"

	"github.com/mazikuben/construction-be/types"
)

// Assistant is the language-model boundary. Both providers translate the
// neutral message slice into their own wire format.
type Assistant interface {
	Complete(ctx context.Context, messages []types.AssistMessage) (string, error)
}
