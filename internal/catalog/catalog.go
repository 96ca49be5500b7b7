// Package catalog holds the fixed option lists offered by the onboarding
// survey and the preferences screen. An option's Value is what gets stored;
// its Label is only for display.
package catalog

import "slices"

// Option is one selectable choice.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// List names used by Lists and the CLI.
const (
	ListSemesters            = "semesters"
	ListExperienceLevels     = "experienceLevels"
	ListWeeklyHours          = "weeklyHours"
	ListPartTimeWork         = "partTimeWork"
	ListYesNoUnsure          = "yesNoUnsure"
	ListFallingBehindOptions = "fallingBehind"
	ListMissedClasses        = "missedClasses"
	ListLearningStyles       = "learningStyles"
	ListStressLevels         = "stressLevels"
)

var semesters = labelled(
	"1st Semester",
	"2nd Semester",
	"3rd Semester",
	"4th Semester",
	"5th Semester",
	"6th Semester",
	"7th Semester",
	"8th Semester",
	"Graduate",
)

var experienceLevels = []Option{
	{Value: "none", Label: "None", Description: "I'm completely new to this subject"},
	{Value: "beginner", Label: "Beginner", Description: "I've seen the basics but need a refresher"},
	{Value: "intermediate", Label: "Intermediate", Description: "I'm comfortable with most core topics"},
	{Value: "advanced", Label: "Advanced", Description: "I could explain this subject to others"},
}

var weeklyHours = []Option{
	{Value: "0-5", Label: "Less than 5 hours"},
	{Value: "5-10", Label: "5-10 hours"},
	{Value: "10-15", Label: "10-15 hours"},
	{Value: "15-20", Label: "15-20 hours"},
	{Value: "20+", Label: "More than 20 hours"},
}

var partTimeWork = []Option{
	{Value: "none", Label: "I don't work"},
	{Value: "0-10", Label: "Less than 10 hours a week"},
	{Value: "10-20", Label: "10-20 hours a week"},
	{Value: "20+", Label: "More than 20 hours a week"},
}

var yesNoUnsure = []Option{
	{Value: "yes", Label: "Yes"},
	{Value: "no", Label: "No"},
	{Value: "unsure", Label: "Not sure"},
}

var fallingBehind = []Option{
	{Value: "yes", Label: "Yes, I'm falling behind"},
	{Value: "no", Label: "No, I'm keeping up"},
	{Value: "unsure", Label: "I'm not sure"},
}

var missedClasses = []Option{
	{Value: "0", Label: "None"},
	{Value: "1-2", Label: "1-2 classes"},
	{Value: "3-5", Label: "3-5 classes"},
	{Value: "6+", Label: "6 or more classes"},
}

var learningStyles = labelled(
	"Videos",
	"Reading",
	"Practice problems",
	"Flashcards",
	"Group study",
	"Visual diagrams",
	"Teaching others",
)

var stressLevels = []Option{
	{Value: "1", Label: "1", Description: "Very relaxed"},
	{Value: "2", Label: "2", Description: "Mostly calm"},
	{Value: "3", Label: "3", Description: "Manageable"},
	{Value: "4", Label: "4", Description: "Stressed"},
	{Value: "5", Label: "5", Description: "Overwhelmed"},
}

func labelled(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}

func Semesters() []Option        { return slices.Clone(semesters) }
func ExperienceLevels() []Option { return slices.Clone(experienceLevels) }
func WeeklyHours() []Option      { return slices.Clone(weeklyHours) }
func PartTimeWork() []Option     { return slices.Clone(partTimeWork) }
func YesNoUnsure() []Option      { return slices.Clone(yesNoUnsure) }
func FallingBehind() []Option    { return slices.Clone(fallingBehind) }
func MissedClasses() []Option    { return slices.Clone(missedClasses) }
func LearningStyles() []Option   { return slices.Clone(learningStyles) }
func StressLevels() []Option     { return slices.Clone(stressLevels) }

// Names returns the list names in a stable order.
func Names() []string {
	return []string{
		ListSemesters,
		ListExperienceLevels,
		ListWeeklyHours,
		ListPartTimeWork,
		ListYesNoUnsure,
		ListFallingBehindOptions,
		ListMissedClasses,
		ListLearningStyles,
		ListStressLevels,
	}
}

// Lists returns every option list keyed by name.
func Lists() map[string][]Option {
	return map[string][]Option{
		ListSemesters:            Semesters(),
		ListExperienceLevels:     ExperienceLevels(),
		ListWeeklyHours:          WeeklyHours(),
		ListPartTimeWork:         PartTimeWork(),
		ListYesNoUnsure:          YesNoUnsure(),
		ListFallingBehindOptions: FallingBehind(),
		ListMissedClasses:        MissedClasses(),
		ListLearningStyles:       LearningStyles(),
		ListStressLevels:         StressLevels(),
	}
}

// Find returns the option with the given stored value.
func Find(options []Option, value string) (Option, bool) {
	i := slices.IndexFunc(options, func(o Option) bool { return o.Value == value })
	if i < 0 {
		return Option{}, false
	}
	return options[i], true
}

// Values returns the stored values of options in order.
func Values(options []Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Value
	}
	return out
}
