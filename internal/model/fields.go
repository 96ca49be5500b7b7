package model

import (
	"slices"

	"github.com/kryva/kryva/internal/sliceset"
)

// Fields is the flat, editable view of a user profile.
type Fields struct {
	Name            string   `json:"name"`
	Major           string   `json:"major"`
	Semester        string   `json:"semester"`
	Institution     string   `json:"institution"`
	TargetGPA       string   `json:"targetGPA"`
	PriorExperience string   `json:"priorExperience"`
	StrongestSkill  string   `json:"strongestSkill"`
	HoursAvailable  string   `json:"hoursAvailable"`
	PartTimeWork    string   `json:"partTimeWork"`
	StressLevel     string   `json:"stressLevel"`
	FallingBehind   string   `json:"fallingBehind"`
	LearningStyle   []string `json:"learningStyle"`
}

// EmptyFields is the record shown when no profile document exists.
func EmptyFields() Fields {
	return Fields{LearningStyle: []string{}}
}

// Clone returns a deep copy.
func (f Fields) Clone() Fields {
	c := f
	c.LearningStyle = slices.Clone(f.LearningStyle)
	if c.LearningStyle == nil {
		c.LearningStyle = []string{}
	}
	return c
}

// Equal compares scalars exactly and the learning style as a set.
func (f Fields) Equal(o Fields) bool {
	return f.Name == o.Name &&
		f.Major == o.Major &&
		f.Semester == o.Semester &&
		f.Institution == o.Institution &&
		f.TargetGPA == o.TargetGPA &&
		f.PriorExperience == o.PriorExperience &&
		f.StrongestSkill == o.StrongestSkill &&
		f.HoursAvailable == o.HoursAvailable &&
		f.PartTimeWork == o.PartTimeWork &&
		f.StressLevel == o.StressLevel &&
		f.FallingBehind == o.FallingBehind &&
		sliceset.Equal(f.LearningStyle, o.LearningStyle)
}

func (f *Fields) scalar(field Field) (*string, error) {
	switch field {
	case FieldName:
		return &f.Name, nil
	case FieldMajor:
		return &f.Major, nil
	case FieldSemester:
		return &f.Semester, nil
	case FieldInstitution:
		return &f.Institution, nil
	case FieldTargetGPA:
		return &f.TargetGPA, nil
	case FieldPriorExperience:
		return &f.PriorExperience, nil
	case FieldStrongestSkill:
		return &f.StrongestSkill, nil
	case FieldHoursAvailable:
		return &f.HoursAvailable, nil
	case FieldPartTimeWork:
		return &f.PartTimeWork, nil
	case FieldStressLevel:
		return &f.StressLevel, nil
	case FieldFallingBehind:
		return &f.FallingBehind, nil
	}
	return nil, ErrUnknownField
}

// Get returns the value of a scalar field.
func (f Fields) Get(field Field) (string, error) {
	p, err := f.scalar(field)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Set assigns a scalar field. The learning style is not a scalar and is
// rejected with ErrUnknownField.
func (f *Fields) Set(field Field, value string) error {
	p, err := f.scalar(field)
	if err != nil {
		return err
	}
	*p = value
	return nil
}
