package domain

import "time"

// FamilyMember is one household member listed on an application.
type FamilyMember struct {
	Name         string `json:"name"`
	Birthdate    string `json:"birthdate,omitempty"`
	Age          int    `json:"age"`
	Education    string `json:"education,omitempty"`
	Occupation   string `json:"occupation,omitempty"`
	Income       string `json:"income,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	CivilStatus  string `json:"civil_status,omitempty"`
}

// Document is an uploaded supporting file.
type Document struct {
	Name       string    `json:"name"`
	FileName   string    `json:"file_name,omitempty"`
	URL        string    `json:"url,omitempty"`
	Type       string    `json:"type,omitempty"`
	Status     string    `json:"status,omitempty"`
	UploadedAt time.Time `json:"uploaded_at,omitzero"`
}
