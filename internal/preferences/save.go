package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kryva/kryva/internal/catalog"
	"github.com/kryva/kryva/internal/failure"
	"github.com/kryva/kryva/internal/model"
)

// RequiredFields must be non-blank for a save.
var RequiredFields = []model.Field{model.FieldName, model.FieldMajor, model.FieldSemester}

// ValidationError rejects a save before any backend call.
type ValidationError struct {
	Field   model.Field
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Choice ties a field to the catalog list its widget offers.
type Choice struct {
	Field   model.Field
	Options func() []catalog.Option
}

// Choices lists the catalog-backed fields in display order.
var Choices = []Choice{
	{Field: model.FieldSemester, Options: catalog.Semesters},
	{Field: model.FieldPriorExperience, Options: catalog.ExperienceLevels},
	{Field: model.FieldHoursAvailable, Options: catalog.WeeklyHours},
	{Field: model.FieldPartTimeWork, Options: catalog.PartTimeWork},
	{Field: model.FieldStressLevel, Options: catalog.StressLevels},
	{Field: model.FieldFallingBehind, Options: catalog.FallingBehind},
	{Field: model.FieldLearningStyle, Options: catalog.LearningStyles},
}

// Validate checks the required fields in order and reports the first blank
// one, then rejects any choice field holding a value its catalog list lacks.
// An empty optional choice is allowed.
func Validate(f model.Fields) error {
	for _, field := range RequiredFields {
		v, _ := f.Get(field)
		if strings.TrimSpace(v) == "" {
			return &ValidationError{Field: field, Message: field.Label() + " is required"}
		}
	}
	for _, c := range Choices {
		if err := validateChoice(f, c); err != nil {
			return err
		}
	}
	return nil
}

func validateChoice(f model.Fields, c Choice) error {
	opts := c.Options()
	if c.Field == model.FieldLearningStyle {
		for _, v := range f.LearningStyle {
			if _, ok := catalog.Find(opts, v); !ok {
				return &ValidationError{Field: c.Field, Message: fmt.Sprintf("%s %q is not an available option", c.Field.Label(), v)}
			}
		}
		return nil
	}

	v, _ := f.Get(c.Field)
	if v == "" {
		return nil
	}
	if _, ok := catalog.Find(opts, v); !ok {
		return &ValidationError{
			Field:   c.Field,
			Message: fmt.Sprintf("%s must be one of: %s", c.Field.Label(), strings.Join(catalog.Values(opts), ", ")),
		}
	}
	return nil
}

// Save validates the edited record and persists it with one partial
// document update, plus a display-name update when the name changed.
func (s *Screen) Save(ctx context.Context) error {
	s.mu.Lock()
	if err := s.editableLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.clearBannerLocked()

	if err := Validate(s.current); err != nil {
		var verr *ValidationError
		errors.As(err, &verr)
		s.banner.Error = verr.Message
		s.mu.Unlock()
		return err
	}
	if !s.dirty {
		s.mu.Unlock()
		return ErrNoChanges
	}

	snapshot := s.current.Clone()
	nameChanged := snapshot.Name != s.original.Name
	s.phase = PhaseSaving
	s.mu.Unlock()

	err := s.persist(ctx, snapshot, nameChanged)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseReady

	if err != nil {
		s.banner.Error = failure.SaveMessage(err)
		s.log.Warn("profile save failed",
			zap.String("kind", failure.Classify(err).String()),
			zap.Error(err),
		)
		return err
	}

	s.original = snapshot
	s.dirty = !s.current.Equal(s.original)
	s.showSuccessLocked(failure.SavedMessage)
	s.log.Info("profile saved", zap.Bool("display_name_changed", nameChanged))
	return nil
}

func (s *Screen) persist(ctx context.Context, f model.Fields, nameChanged bool) error {
	if err := s.docs.Update(ctx, s.session.UID, model.UpdatePaths(f)); err != nil {
		return fmt.Errorf("failed to update profile document: %w", err)
	}
	if nameChanged {
		if err := s.ids.UpdateDisplayName(ctx, s.session, f.Name); err != nil {
			return fmt.Errorf("failed to update display name: %w", err)
		}
	}
	return nil
}
