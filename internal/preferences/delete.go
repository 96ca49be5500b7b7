package preferences

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kryva/kryva/internal/failure"
	"github.com/kryva/kryva/internal/model"
)

// ConfirmationPhrase must be typed verbatim to enable account deletion.
const ConfirmationPhrase = "delete my account"

var (
	ErrDeletionClosed       = errors.New("deletion dialog is not open")
	ErrConfirmationMismatch = errors.New("deletion confirmation does not match")
)

// DeletionDialog is the state of the delete-account overlay.
type DeletionDialog struct {
	Open         bool   `json:"open"`
	Confirmation string `json:"confirmation"`
	Error        string `json:"error,omitempty"`
	CanConfirm   bool   `json:"canConfirm"`
}

type deletion struct {
	open         bool
	confirmation string
	err          string
}

// OpenDeletion shows the overlay with an empty confirmation.
func (s *Screen) OpenDeletion() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseDeleted {
		return ErrDeleted
	}
	s.deletion = deletion{open: true}
	return nil
}

// CloseDeletion hides the overlay and forgets what was typed.
func (s *Screen) CloseDeletion() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseDeleting {
		return ErrBusy
	}
	s.deletion = deletion{}
	return nil
}

// SetConfirmation records the text typed into the overlay.
func (s *Screen) SetConfirmation(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.deletion.open {
		return ErrDeletionClosed
	}
	s.deletion.confirmation = text
	s.deletion.err = ""
	return nil
}

// CanConfirmDeletion reports whether the confirm action is enabled.
func (s *Screen) CanConfirmDeletion() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canConfirmLocked()
}

func (s *Screen) canConfirmLocked() bool {
	return s.deletion.open &&
		s.deletion.confirmation == ConfirmationPhrase &&
		s.phase != PhaseDeleting &&
		s.phase != PhaseSaving &&
		s.phase != PhaseDeleted
}

// Deletion returns the overlay state.
func (s *Screen) Deletion() DeletionDialog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeletionDialog{
		Open:         s.deletion.open,
		Confirmation: s.deletion.confirmation,
		Error:        s.deletion.err,
		CanConfirm:   s.canConfirmLocked(),
	}
}

// ConfirmDeletion soft-deletes the profile document and then deletes the
// identity. If the identity cannot be deleted the soft-delete marker is
// cleared again, unless the identity turns out to be gone already, which
// counts as success. Failures leave the overlay open with a message.
func (s *Screen) ConfirmDeletion(ctx context.Context) error {
	if !s.session.Authenticated() {
		return ErrUnauthenticated
	}

	s.mu.Lock()
	if !s.deletion.open {
		s.mu.Unlock()
		return ErrDeletionClosed
	}
	switch {
	case s.loading, s.phase == PhaseSaving, s.phase == PhaseDeleting:
		s.mu.Unlock()
		return ErrBusy
	case s.phase == PhaseDeleted:
		s.mu.Unlock()
		return ErrDeleted
	}
	if s.deletion.confirmation != ConfirmationPhrase {
		s.deletion.err = failure.ConfirmationMismatchMessage
		s.mu.Unlock()
		return ErrConfirmationMismatch
	}
	prev := s.phase
	s.phase = PhaseDeleting
	s.deletion.err = ""
	s.mu.Unlock()

	err := s.deleteAccount(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.phase = prev
		s.deletion.err = failure.DeleteMessage(err)
		s.log.Warn("account deletion failed",
			zap.String("kind", failure.Classify(err).String()),
			zap.Error(err),
		)
		return err
	}

	s.phase = PhaseDeleted
	s.deletion = deletion{}
	s.clearBannerLocked()
	s.log.Info("account deleted")
	return nil
}

func (s *Screen) deleteAccount(ctx context.Context) error {
	uid := s.session.UID

	if err := s.docs.Update(ctx, uid, model.DeletionMarker(s.now().UTC())); err != nil {
		return fmt.Errorf("failed to mark profile deleted: %w", err)
	}

	if err := s.ids.DeleteIdentity(ctx, s.session); err != nil {
		if failure.HasCode(err, failure.CodeUserNotFound) {
			s.log.Info("identity already deleted, keeping deletion marker")
			return nil
		}
		if cerr := s.docs.Update(context.WithoutCancel(ctx), uid, model.ClearedDeletionMarker()); cerr != nil {
			s.log.Error("failed to clear deletion marker", zap.Error(cerr))
		}
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	return nil
}
