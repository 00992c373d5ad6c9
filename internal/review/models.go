package review

import (
	"strings"
	"time"

	"soloparent/internal/wizard"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
	s "soloparent/pkg/string"
)

// Kind names the record type under review.
type Kind string

const (
	KindApplicant  Kind = "applicant"
	KindSoloParent Kind = "solo_parent"
)

func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindApplicant:
		return KindApplicant, nil
	case KindSoloParent:
		return KindSoloParent, nil
	}
	return "", dErrors.NewField("kind", "kind must be one of [applicant solo_parent]")
}

func (k Kind) flow() wizard.Flow {
	if k == KindSoloParent {
		return wizard.SoloParentFlow
	}
	return wizard.ApplicantFlow
}

// Review binds a wizard to one freshly fetched record.
type Review struct {
	Kind     Kind
	Code     domain.CodeID
	Record   any
	Wizard   *wizard.Wizard
	Swipe    *wizard.SwipeTracker
	OpenedAt time.Time
	// LastError is the failure of the most recent submit, cleared on the next attempt.
	LastError string
}

// View is what the console renders for an open review.
type View struct {
	Kind      Kind         `json:"kind"`
	Code      string       `json:"code"`
	Record    any          `json:"record"`
	Wizard    wizard.State `json:"wizard"`
	OpenedAt  time.Time    `json:"opened_at"`
	LastError string       `json:"last_error,omitempty"`
}

func (r *Review) View() View {
	return View{
		Kind:      r.Kind,
		Code:      r.Code.String(),
		Record:    r.Record,
		Wizard:    r.Wizard.State(),
		OpenedAt:  r.OpenedAt,
		LastError: r.LastError,
	}
}

// Outcome reports an executed decision.
type Outcome struct {
	Kind     Kind            `json:"kind"`
	Code     string          `json:"code"`
	Decision wizard.Decision `json:"decision"`
	Record   any             `json:"record"`
}

// GesturePhase is one stage of a touch sequence.
type GesturePhase string

const (
	PhaseBegin GesturePhase = "begin"
	PhaseMove  GesturePhase = "move"
	PhaseEnd   GesturePhase = "end"
)

type GestureRequest struct {
	Phase GesturePhase `json:"phase" validate:"required,oneof=begin move end"`
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
}

type OpenRequest struct {
	Kind string `json:"kind" validate:"required"`
	Code string `json:"code" validate:"notblank"`
}

func (r *OpenRequest) Normalize() {
	s.TrimStrings(&r.Kind, &r.Code)
}

type ConfirmRequest struct {
	Action  string `json:"action" validate:"required"`
	Remarks string `json:"remarks" validate:"max=2000"`
}

type SubmitRequest struct {
	// Remarks, when present, replace the remarks entered in the confirmation.
	Remarks *string `json:"remarks,omitempty"`
}
