// Package storage provides persistence collaborators for resume documents.
// The builder only depends on the ResumeStore interface; the REST client is
// the collaborator described by the service API, and the Postgres store
// serves deployments that embed persistence directly.
package storage

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/normalize"
)

// ResumeStore is the generic document CRUD contract the builder saves and
// loads against. Fetch returns (nil, nil) when no document exists yet; the
// absence of a saved resume is a normal fresh-start state, not an error.
type ResumeStore interface {
	Fetch(ctx context.Context) (*normalize.WireDocument, error)
	Create(ctx context.Context, doc *normalize.WireDocument) (*normalize.WireDocument, error)
	Update(ctx context.Context, doc *normalize.WireDocument) (*normalize.WireDocument, error)
}

// TransportError represents a network or storage collaborator failure. The
// caller's in-memory document is preserved unchanged; retry is manual.
type TransportError struct {
	Op      string
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error during %s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error during %s: %s", e.Op, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
