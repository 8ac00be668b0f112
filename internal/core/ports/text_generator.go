package ports

import (
	"context"
)

// TextGenerator produces a short piece of prose from a prompt.
// Used to phrase notification messages; callers must tolerate failure
// and fall back to a static message.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
