package channels

import (
	"context"

	"github.com/nextlevelbuilder/scrybot/internal/cardref"
	"github.com/nextlevelbuilder/scrybot/internal/scryfall"
)

// Resolver resolves one card reference into an Outcome.
type Resolver interface {
	Resolve(ctx context.Context, name string) (scryfall.Outcome, error)
}

// Reply pairs one extracted reference with its resolution result. Exactly one
// of Outcome and Err is set.
type Reply struct {
	Ref     string
	Outcome scryfall.Outcome
	Err     error
}

// ResolveAll extracts card references from message text and resolves each one
// sequentially, in extraction order. A failed resolution is captured in its
// Reply and never aborts the remaining references.
func ResolveAll(ctx context.Context, resolver Resolver, text string) []Reply {
	refs := cardref.Extract(text)
	if len(refs) == 0 {
		return nil
	}

	replies := make([]Reply, 0, len(refs))
	for _, ref := range refs {
		outcome, err := resolver.Resolve(ctx, ref)
		replies = append(replies, Reply{Ref: ref, Outcome: outcome, Err: err})
	}
	return replies
}
