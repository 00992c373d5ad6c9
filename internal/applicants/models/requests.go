package models

import "strings"

type DeclineRequest struct {
	Remarks string `json:"remarks" validate:"notblank,max=2000"`
}

func (r *DeclineRequest) Normalize() {
	r.Remarks = strings.TrimSpace(r.Remarks)
}
