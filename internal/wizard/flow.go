// Package wizard is the fixed-step review view over a single record: a bounded step
// cursor, a swipe adapter feeding the same transitions, and a confirmation sub-state
// guarding the terminal action.
package wizard

import "slices"

type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
	ActionRevoke  Action = "revoke"
)

type ActionSpec struct {
	Name            Action `json:"name"`
	Label           string `json:"label"`
	RequiresRemarks bool   `json:"requires_remarks"`
}

// Flow fixes the ordered step titles and the terminal actions offered on the last step.
type Flow struct {
	Name    string       `json:"name"`
	Steps   []string     `json:"steps"`
	Actions []ActionSpec `json:"actions"`
}

var ApplicantFlow = Flow{
	Name: "applicant",
	Steps: []string{
		"Personal Info",
		"Family",
		"Classification",
		"Needs",
		"Emergency Contact",
		"Documents",
	},
	Actions: []ActionSpec{
		{Name: ActionAccept, Label: "Accept"},
		{Name: ActionDecline, Label: "Decline", RequiresRemarks: true},
	},
}

var SoloParentFlow = Flow{
	Name: "solo_parent",
	Steps: []string{
		"Personal Info",
		"Family",
		"Classification",
		"Documents",
	},
	Actions: []ActionSpec{
		{Name: ActionRevoke, Label: "Revoke", RequiresRemarks: true},
	},
}

func (f Flow) StepCount() int {
	return len(f.Steps)
}

func (f Flow) Action(name Action) (ActionSpec, bool) {
	i := slices.IndexFunc(f.Actions, func(a ActionSpec) bool { return a.Name == name })
	if i < 0 {
		return ActionSpec{}, false
	}
	return f.Actions[i], true
}
