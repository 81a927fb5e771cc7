// Package builder provides the stateful session object mediating resume
// edits and persistence. A Store holds exactly one mutable document; all
// mutations are synchronous and serialized by the store's lock, and save or
// export snapshots are taken atomically so a half-applied edit can never be
// captured.
package builder

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// SaveStatus is the persistence lifecycle state surfaced to the
// presentation layer.
type SaveStatus string

const (
	StatusIdle   SaveStatus = "idle"
	StatusSaving SaveStatus = "saving"
	StatusSaved  SaveStatus = "saved"
	StatusError  SaveStatus = "error"
)

// SavedDisplayInterval is how long the transient "saved" status is shown
// before reverting to idle. UI feedback only, not a correctness property.
const SavedDisplayInterval = 3 * time.Second

// dateLayout is the month-granular format used for temporal item dates.
const dateLayout = "2006-01"

// Store is the builder state machine. It has exactly one writer (its own
// mutation methods) and any number of readers via Document snapshots.
type Store struct {
	mu            sync.Mutex
	doc           *types.ResumeDocument
	remote        storage.ResumeStore
	profile       types.PersonalInfo
	status        SaveStatus
	statusMessage string

	// saveGen invalidates stale saved->idle reverts when saves overlap
	// with the display interval.
	saveGen     uint64
	savedRevert time.Duration

	// saves collapses concurrent Save calls into one in-flight request;
	// an in-flight save runs to completion, it cannot be aborted.
	saves singleflight.Group

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides item id generation. Used by tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithSavedRevert overrides the saved->idle display interval.
func WithSavedRevert(d time.Duration) Option {
	return func(s *Store) { s.savedRevert = d }
}

// New creates a Store with a fresh document synthesized from the
// authenticated user's profile defaults. Load replaces it wholesale when a
// remote document exists.
func New(remote storage.ResumeStore, profile types.PersonalInfo, opts ...Option) *Store {
	s := &Store{
		remote:      remote,
		profile:     profile,
		status:      StatusIdle,
		savedRevert: SavedDisplayInterval,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc = s.freshDocument()
	return s
}

func (s *Store) freshDocument() *types.ResumeDocument {
	doc := normalize.Document(nil, "")
	doc.PersonalInfo = s.profile
	return doc
}

// Document returns a deep copy of the current document for read-only
// consumers (renderer, exporter, presentation layer).
func (s *Store) Document() *types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Status returns the current save status and, for StatusError, a
// human-readable message.
func (s *Store) Status() (SaveStatus, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.statusMessage
}

// SetTitle sets the document title.
func (s *Store) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Title = title
	s.touchLocked()
}

// SetSummary sets the free-text summary.
func (s *Store) SetSummary(summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Summary = summary
	s.touchLocked()
}

// SetTemplate selects one of the fixed template strategies. Unknown names
// are ignored.
func (s *Store) SetTemplate(name string) {
	if !types.KnownTemplate(name) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Template = name
	s.touchLocked()
}

// UpdatePersonalInfo shallow-merges a patch onto the personal info section.
func (s *Store) UpdatePersonalInfo(patch PersonalInfoPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.apply(&s.doc.PersonalInfo)
	s.touchLocked()
}

// Load fetches the remote document, normalizes it, and replaces the
// in-memory document wholesale. Absence of a remote document is a normal
// fresh-start state, not an error. A transport failure leaves the current
// in-memory document untouched and editable.
func (s *Store) Load(ctx context.Context) error {
	wire, err := s.remote.Fetch(ctx)
	if err != nil {
		s.setStatus(StatusError, err.Error())
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A template chosen during this session survives the reload.
	override := ""
	if s.doc != nil && s.doc.Template != types.DefaultTemplate {
		override = s.doc.Template
	}

	if wire == nil {
		s.doc = s.freshDocument()
		if override != "" {
			s.doc.Template = override
		}
	} else {
		s.doc = normalize.Document(normalize.FromWire(wire), override)
	}
	s.status = StatusIdle
	s.statusMessage = ""
	return nil
}

// Save serializes a consistent snapshot of the in-memory document into the
// wire shape and issues a create or an update depending on whether the
// document already carries a remote identifier. Concurrent Save calls are
// collapsed into the single in-flight request. Transport failures surface
// as StatusError; the in-memory document is never corrupted.
func (s *Store) Save(ctx context.Context) error {
	_, err, _ := s.saves.Do("save", func() (any, error) {
		return nil, s.save(ctx)
	})
	return err
}

func (s *Store) save(ctx context.Context) error {
	s.mu.Lock()
	s.status = StatusSaving
	s.statusMessage = ""
	s.doc.LastUpdated = s.now()
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	wire := normalize.ToWire(snapshot)
	if err := schemas.ValidateWire(wire); err != nil {
		s.setStatus(StatusError, err.Error())
		return err
	}

	var (
		result *normalize.WireDocument
		err    error
	)
	if snapshot.ID == "" {
		result, err = s.remote.Create(ctx, wire)
	} else {
		result, err = s.remote.Update(ctx, wire)
	}
	if err != nil {
		s.setStatus(StatusError, err.Error())
		return err
	}

	s.mu.Lock()
	if result != nil && result.ID != "" && s.doc.ID == "" {
		s.doc.ID = result.ID
	}
	s.status = StatusSaved
	s.statusMessage = ""
	s.saveGen++
	gen := s.saveGen
	s.mu.Unlock()

	time.AfterFunc(s.savedRevert, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.saveGen == gen && s.status == StatusSaved {
			s.status = StatusIdle
		}
	})
	return nil
}

func (s *Store) setStatus(status SaveStatus, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.statusMessage = message
	if status == StatusError {
		log.Printf("[BUILDER] %s", message)
	}
}

// touchLocked records the edit time. Callers hold s.mu and must only call
// it when the document actually changed.
func (s *Store) touchLocked() {
	s.doc.LastUpdated = s.now()
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}
