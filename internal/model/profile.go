package model

import "time"

// Document section keys of the stored user profile.
const (
	SectionDemographics         = "demographics"
	SectionGoals                = "goals"
	SectionSkillAssessment      = "skillAssessment"
	SectionConstraints          = "constraints"
	SectionPsychologicalFactors = "psychologicalFactors"
	SectionLearningPreferences  = "learningPreferences"

	KeyDeleted   = "deleted"
	KeyDeletedAt = "deletedAt"
)

// Field is the dotted document path of an editable profile field.
type Field string

const (
	FieldName            Field = "demographics.name"
	FieldMajor           Field = "demographics.major"
	FieldSemester        Field = "demographics.semester"
	FieldInstitution     Field = "demographics.institution"
	FieldTargetGPA       Field = "goals.targetGPA"
	FieldPriorExperience Field = "skillAssessment.priorExperience"
	FieldStrongestSkill  Field = "skillAssessment.strongestSkill"
	FieldHoursAvailable  Field = "constraints.hoursAvailable"
	FieldPartTimeWork    Field = "constraints.partTimeWork"
	FieldStressLevel     Field = "psychologicalFactors.stressLevel"
	FieldFallingBehind   Field = "psychologicalFactors.fallingBehind"
	FieldLearningStyle   Field = "learningPreferences.learningStyle"
)

// ScalarFields lists the single-valued editable fields in display order.
var ScalarFields = []Field{
	FieldName,
	FieldMajor,
	FieldSemester,
	FieldInstitution,
	FieldTargetGPA,
	FieldPriorExperience,
	FieldStrongestSkill,
	FieldHoursAvailable,
	FieldPartTimeWork,
	FieldStressLevel,
	FieldFallingBehind,
}

// Label is the human name of the field used in messages.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldMajor:
		return "Major"
	case FieldSemester:
		return "Semester"
	case FieldInstitution:
		return "Institution"
	case FieldTargetGPA:
		return "Target GPA"
	case FieldPriorExperience:
		return "Prior experience"
	case FieldStrongestSkill:
		return "Strongest skill"
	case FieldHoursAvailable:
		return "Hours available"
	case FieldPartTimeWork:
		return "Part-time work"
	case FieldStressLevel:
		return "Stress level"
	case FieldFallingBehind:
		return "Falling behind"
	case FieldLearningStyle:
		return "Learning style"
	}
	return string(f)
}

// DeletionMarker is the partial update that soft-deletes a profile.
func DeletionMarker(at time.Time) map[string]any {
	return map[string]any{
		KeyDeleted:   true,
		KeyDeletedAt: at,
	}
}

// IsDeleted reports whether a stored profile carries the deletion marker.
func IsDeleted(data map[string]any) bool {
	v, _ := data[KeyDeleted].(bool)
	return v
}

// ClearedDeletionMarker reverts DeletionMarker.
func ClearedDeletionMarker() map[string]any {
	return map[string]any{
		KeyDeleted:   false,
		KeyDeletedAt: nil,
	}
}
