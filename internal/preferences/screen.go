// Package preferences implements the account preferences screen: loading a
// student's profile, tracking edits against the last persisted copy, saving
// them and deleting the account.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kryva/kryva/internal/failure"
	"github.com/kryva/kryva/internal/identity"
	"github.com/kryva/kryva/internal/model"
	"github.com/kryva/kryva/internal/store"
)

// DocumentStore reads and partially updates profile documents keyed by UID.
type DocumentStore interface {
	Get(ctx context.Context, key string) (store.Snapshot, error)
	Update(ctx context.Context, key string, fields map[string]any) error
}

// IdentityProvider changes the identity record behind a session.
type IdentityProvider interface {
	UpdateDisplayName(ctx context.Context, s identity.Session, name string) error
	DeleteIdentity(ctx context.Context, s identity.Session) error
}

// DefaultSuccessTTL is how long the saved message stays visible.
const DefaultSuccessTTL = 3000 * time.Millisecond

var (
	ErrUnauthenticated = errors.New("no authenticated identity")
	ErrAlreadyLoaded   = errors.New("profile already loaded")
	ErrNotReady        = errors.New("profile is not loaded")
	ErrBusy            = errors.New("another operation is in progress")
	ErrNoChanges       = errors.New("no changes to save")
	ErrDeleted         = errors.New("account has been deleted")
)

// Phase is the lifecycle stage of a Screen.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseLoadFailed
	PhaseSaving
	PhaseDeleting
	PhaseDeleted
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseLoadFailed:
		return "load_failed"
	case PhaseSaving:
		return "saving"
	case PhaseDeleting:
		return "deleting"
	case PhaseDeleted:
		return "deleted"
	}
	return "unknown"
}

// Banner holds the transient message shown above the form.
type Banner struct {
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}

// Option configures a Screen.
type Option func(*Screen)

func WithLogger(l *zap.Logger) Option { return func(s *Screen) { s.log = l } }

func WithClock(now func() time.Time) Option { return func(s *Screen) { s.now = now } }

// WithSuccessTTL overrides DefaultSuccessTTL.
func WithSuccessTTL(d time.Duration) Option { return func(s *Screen) { s.successTTL = d } }

// Screen is the state of one preferences screen for one session.
// All methods are safe for concurrent use.
type Screen struct {
	session    identity.Session
	docs       DocumentStore
	ids        IdentityProvider
	log        *zap.Logger
	now        func() time.Time
	successTTL time.Duration

	mu           sync.Mutex
	phase        Phase
	loadStarted  bool
	loading      bool
	original     model.Fields
	current      model.Fields
	dirty        bool
	banner       Banner
	successTimer *time.Timer
	deletion     deletion
}

// NewScreen returns a screen in PhaseLoading acting as session.
func NewScreen(session identity.Session, docs DocumentStore, ids IdentityProvider, opts ...Option) *Screen {
	s := &Screen{
		session:    session,
		docs:       docs,
		ids:        ids,
		log:        zap.NewNop(),
		now:        time.Now,
		successTTL: DefaultSuccessTTL,
		phase:      PhaseLoading,
		original:   model.EmptyFields(),
		current:    model.EmptyFields(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With(zap.String("user_id", session.UID))
	return s
}

// Session returns the identity the screen acts as.
func (s *Screen) Session() identity.Session { return s.session }

// Load reads the profile document once. A missing document loads as an
// empty profile. A soft-deleted document moves the screen to PhaseDeleted.
// On failure the screen stays non-editable.
func (s *Screen) Load(ctx context.Context) error {
	if !s.session.Authenticated() {
		return ErrUnauthenticated
	}

	s.mu.Lock()
	switch {
	case s.phase == PhaseDeleted:
		s.mu.Unlock()
		return ErrDeleted
	case s.phase == PhaseDeleting:
		s.mu.Unlock()
		return ErrBusy
	case s.loadStarted:
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.loadStarted = true
	s.loading = true
	s.mu.Unlock()

	snap, err := s.docs.Get(ctx, s.session.UID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.phase = PhaseLoadFailed
		s.banner = Banner{Error: failure.LoadMessage}
		s.log.Error("profile load failed", zap.Error(err))
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if snap.Exists && model.IsDeleted(snap.Data) {
		s.phase = PhaseDeleted
		s.log.Info("profile is marked deleted")
		return ErrDeleted
	}

	fields := model.EmptyFields()
	if snap.Exists {
		fields = model.Flatten(snap.Data)
	}
	s.original = fields
	s.current = fields.Clone()
	s.dirty = false
	s.phase = PhaseReady
	return nil
}

// Phase returns the current phase.
func (s *Screen) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// HasChanges reports whether the edited record differs from the last
// loaded or saved one.
func (s *Screen) HasChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Original returns a copy of the last loaded or saved record.
func (s *Screen) Original() model.Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.original.Clone()
}

// Current returns a copy of the record being edited.
func (s *Screen) Current() model.Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Banner returns the message currently shown.
func (s *Screen) Banner() Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banner
}

// Close releases the success-message timer.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

func (s *Screen) clearBannerLocked() {
	s.banner = Banner{}
	s.stopTimerLocked()
}

func (s *Screen) stopTimerLocked() {
	if s.successTimer != nil {
		s.successTimer.Stop()
		s.successTimer = nil
	}
}

func (s *Screen) showSuccessLocked(msg string) {
	s.stopTimerLocked()
	s.banner = Banner{Success: msg}

	var t *time.Timer
	t = time.AfterFunc(s.successTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.successTimer != t {
			return
		}
		s.successTimer = nil
		s.banner.Success = ""
	})
	s.successTimer = t
}
