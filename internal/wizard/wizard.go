package wizard

import (
	"strconv"
	"strings"

	dErrors "soloparent/pkg/domain-errors"
	"soloparent/pkg/validation"
)

// Decision is a validated terminal action ready to execute.
type Decision struct {
	Action  Action `json:"action"`
	Remarks string `json:"remarks,omitempty"`
}

// Confirmation is the sub-state shown before a terminal action is submitted.
type Confirmation struct {
	Action  ActionSpec `json:"action"`
	Remarks string     `json:"remarks"`
}

// Wizard tracks the 1-based current step of a Flow. It is not safe for concurrent use.
type Wizard struct {
	flow    Flow
	step    int
	confirm *Confirmation
}

// New opens a wizard on flow at step 1.
func New(flow Flow) *Wizard {
	w := &Wizard{flow: flow}
	w.Open()
	return w
}

// Open resets to step 1 and clears any pending confirmation.
func (w *Wizard) Open() {
	w.step = 1
	w.confirm = nil
}

func (w *Wizard) Flow() Flow { return w.flow }
func (w *Wizard) Step() int  { return w.step }

func (w *Wizard) Title() string {
	return w.flow.Steps[w.step-1]
}

func (w *Wizard) IsFirst() bool { return w.step == 1 }
func (w *Wizard) IsLast() bool  { return w.step == w.flow.StepCount() }

// Next advances one step; it is a no-op on the last step.
func (w *Wizard) Next() bool {
	if w.IsLast() {
		return false
	}
	w.step++
	return true
}

// Previous goes back one step; it is a no-op on the first step. Leaving the last step
// drops any confirmation in progress.
func (w *Wizard) Previous() bool {
	if w.IsFirst() {
		return false
	}
	w.step--
	w.confirm = nil
	return true
}

// JumpTo moves directly to step k (1-based).
func (w *Wizard) JumpTo(k int) error {
	if k < 1 || k > w.flow.StepCount() {
		return dErrors.NewField("step", "step must be between 1 and "+strconv.Itoa(w.flow.StepCount()))
	}
	w.step = k
	if !w.IsLast() {
		w.confirm = nil
	}
	return nil
}

// Apply routes a swipe gesture through Next/Previous.
func (w *Wizard) Apply(g Gesture) bool {
	switch g {
	case GestureNext:
		return w.Next()
	case GesturePrevious:
		return w.Previous()
	default:
		return false
	}
}

// RequestConfirm opens the confirmation sub-state for action. Only allowed on the last step.
func (w *Wizard) RequestConfirm(action Action) error {
	spec, ok := w.flow.Action(action)
	if !ok {
		return dErrors.NewField("action", "action "+string(action)+" is not available here")
	}
	if !w.IsLast() {
		return dErrors.New(dErrors.CodeConflict, "actions are only available on the last step")
	}
	w.confirm = &Confirmation{Action: spec}
	return nil
}

func (w *Wizard) SetRemarks(remarks string) error {
	if w.confirm == nil {
		return dErrors.New(dErrors.CodeConflict, "no action awaiting confirmation")
	}
	w.confirm.Remarks = remarks
	return nil
}

func (w *Wizard) CancelConfirm() {
	w.confirm = nil
}

// Confirmation returns a copy of the pending confirmation, or nil.
func (w *Wizard) Confirmation() *Confirmation {
	if w.confirm == nil {
		return nil
	}
	c := *w.confirm
	return &c
}

// CanSubmit is false with no confirmation open or when required remarks are blank.
func (w *Wizard) CanSubmit() bool {
	return w.validate() == nil
}

// Decision returns the confirmed action with trimmed remarks.
func (w *Wizard) Decision() (Decision, error) {
	if err := w.validate(); err != nil {
		return Decision{}, err
	}
	return Decision{Action: w.confirm.Action.Name, Remarks: strings.TrimSpace(w.confirm.Remarks)}, nil
}

func (w *Wizard) validate() error {
	if w.confirm == nil {
		return dErrors.New(dErrors.CodeConflict, "no action awaiting confirmation")
	}
	remarks := strings.TrimSpace(w.confirm.Remarks)
	if w.confirm.Action.RequiresRemarks && remarks == "" {
		return dErrors.NewField("remarks", "remarks are required to "+string(w.confirm.Action.Name))
	}
	if len(remarks) > validation.MaxRemarksLength {
		return dErrors.NewField("remarks", "remarks must be at most "+strconv.Itoa(validation.MaxRemarksLength)+" characters")
	}
	return nil
}

// State is a serializable snapshot of the wizard.
type State struct {
	Flow         string        `json:"flow"`
	Step         int           `json:"step"`
	StepCount    int           `json:"step_count"`
	Title        string        `json:"title"`
	Steps        []string      `json:"steps"`
	Actions      []ActionSpec  `json:"actions,omitempty"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
	CanSubmit    bool          `json:"can_submit"`
}

func (w *Wizard) State() State {
	st := State{
		Flow:         w.flow.Name,
		Step:         w.step,
		StepCount:    w.flow.StepCount(),
		Title:        w.Title(),
		Steps:        w.flow.Steps,
		Confirmation: w.Confirmation(),
		CanSubmit:    w.CanSubmit(),
	}
	if w.IsLast() {
		st.Actions = w.flow.Actions
	}
	return st
}
