package model

import (
	"fmt"
	"strconv"
	"time"
)

// Flatten maps a stored profile document onto the editable record.
// Missing sections and keys become empty values.
func Flatten(doc map[string]any) Fields {
	demo := section(doc, SectionDemographics)
	goals := section(doc, SectionGoals)
	skills := section(doc, SectionSkillAssessment)
	cons := section(doc, SectionConstraints)
	psych := section(doc, SectionPsychologicalFactors)
	learn := section(doc, SectionLearningPreferences)

	return Fields{
		Name:            str(demo["name"]),
		Major:           str(demo["major"]),
		Semester:        str(demo["semester"]),
		Institution:     str(demo["institution"]),
		TargetGPA:       str(goals["targetGPA"]),
		PriorExperience: str(skills["priorExperience"]),
		StrongestSkill:  str(skills["strongestSkill"]),
		HoursAvailable:  str(cons["hoursAvailable"]),
		PartTimeWork:    str(cons["partTimeWork"]),
		StressLevel:     str(psych["stressLevel"]),
		FallingBehind:   str(psych["fallingBehind"]),
		LearningStyle:   strs(learn["learningStyle"]),
	}
}

// Unflatten builds the nested document for the editable record. It is the
// inverse of Flatten for every field Flatten reads.
func Unflatten(f Fields) map[string]any {
	f = f.Clone()
	return map[string]any{
		SectionDemographics: map[string]any{
			"name":        f.Name,
			"major":       f.Major,
			"semester":    f.Semester,
			"institution": f.Institution,
		},
		SectionGoals: map[string]any{
			"targetGPA": f.TargetGPA,
		},
		SectionSkillAssessment: map[string]any{
			"priorExperience": f.PriorExperience,
			"strongestSkill":  f.StrongestSkill,
		},
		SectionConstraints: map[string]any{
			"hoursAvailable": f.HoursAvailable,
			"partTimeWork":   f.PartTimeWork,
		},
		SectionPsychologicalFactors: map[string]any{
			"stressLevel":   f.StressLevel,
			"fallingBehind": f.FallingBehind,
		},
		SectionLearningPreferences: map[string]any{
			"learningStyle": f.LearningStyle,
		},
	}
}

// UpdatePaths returns the partial update writing every editable field,
// keyed by dotted document path.
func UpdatePaths(f Fields) map[string]any {
	f = f.Clone()
	out := make(map[string]any, len(ScalarFields)+1)
	for _, field := range ScalarFields {
		v, _ := f.Get(field)
		out[string(field)] = v
	}
	out[string(FieldLearningStyle)] = f.LearningStyle
	return out
}

func section(doc map[string]any, key string) map[string]any {
	if doc == nil {
		return nil
	}
	m, _ := doc[key].(map[string]any)
	return m
}

func str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

func strs(v any) []string {
	out := []string{}
	switch t := v.(type) {
	case []string:
		out = append(out, t...)
	case []any:
		for _, e := range t {
			if s := str(e); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
