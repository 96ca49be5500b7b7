package preferences

import (
	"slices"

	"github.com/kryva/kryva/internal/model"
)

// Set changes one scalar field.
func (s *Screen) Set(field model.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return err
	}
	if err := s.current.Set(field, value); err != nil {
		return err
	}
	s.touchedLocked()
	return nil
}

// SetLearningStyle replaces the selected learning-style tags.
func (s *Screen) SetLearningStyle(tags []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return err
	}
	s.current.LearningStyle = slices.Clone(tags)
	if s.current.LearningStyle == nil {
		s.current.LearningStyle = []string{}
	}
	s.touchedLocked()
	return nil
}

// ToggleLearningStyle selects tag, or deselects it if already selected.
func (s *Screen) ToggleLearningStyle(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return err
	}
	if i := slices.Index(s.current.LearningStyle, tag); i >= 0 {
		s.current.LearningStyle = slices.Delete(slices.Clone(s.current.LearningStyle), i, i+1)
	} else {
		s.current.LearningStyle = append(slices.Clone(s.current.LearningStyle), tag)
	}
	s.touchedLocked()
	return nil
}

// Apply replaces the whole edited record.
func (s *Screen) Apply(f model.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return err
	}
	s.current = f.Clone()
	s.touchedLocked()
	return nil
}

func (s *Screen) editableLocked() error {
	switch s.phase {
	case PhaseReady:
		return nil
	case PhaseSaving, PhaseDeleting:
		return ErrBusy
	case PhaseDeleted:
		return ErrDeleted
	default:
		return ErrNotReady
	}
}

func (s *Screen) touchedLocked() {
	s.clearBannerLocked()
	s.dirty = !s.current.Equal(s.original)
}
