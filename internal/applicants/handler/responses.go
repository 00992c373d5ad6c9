package handler

import (
	"time"

	"soloparent/internal/applicants/models"
	"soloparent/internal/records"
)

type ApplicantSummary struct {
	ID        int64     `json:"id"`
	CodeID    string    `json:"code_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Barangay  string    `json:"barangay"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	Lifecycle string    `json:"lifecycle"`
}

type ApplicantPageResponse struct {
	Items     []ApplicantSummary `json:"items"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
	PageCount int                `json:"page_count"`
}

func toSummary(a *models.Applicant) ApplicantSummary {
	return ApplicantSummary{
		ID:        a.ID,
		CodeID:    a.CodeID.String(),
		Name:      a.FullName(),
		Email:     a.Email,
		Barangay:  a.Barangay,
		Age:       a.Age,
		CreatedAt: a.CreatedAt,
		Lifecycle: string(a.Lifecycle),
	}
}

func toPageResponse(p *records.Page[models.Applicant]) *ApplicantPageResponse {
	items := make([]ApplicantSummary, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, toSummary(&p.Items[i]))
	}
	return &ApplicantPageResponse{
		Items:     items,
		Total:     p.Total,
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: p.PageCount,
	}
}
