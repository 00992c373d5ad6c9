package service

import (
	"strings"

	"soloparent/internal/applicants/models"
	"soloparent/internal/backend"
	"soloparent/pkg/domain"
)

func toApplicant(dto backend.ApplicantDTO) models.Applicant {
	a := models.Applicant{
		ID:                  int64(dto.ID),
		CodeID:              domain.CodeID(strings.TrimSpace(dto.CodeID)),
		FirstName:           dto.FirstName,
		MiddleName:          dto.MiddleName,
		LastName:            dto.LastName,
		Suffix:              dto.Suffix,
		Age:                 int(dto.Age),
		Gender:              dto.Gender,
		DateOfBirth:         dto.DateOfBirth,
		PlaceOfBirth:        dto.PlaceOfBirth,
		Barangay:            dto.Barangay,
		Address:             dto.Address,
		Email:               dto.Email,
		ContactNumber:       dto.ContactNumber,
		Education:           dto.Education,
		Occupation:          dto.Occupation,
		Company:             dto.Company,
		EmploymentStatus:    dto.EmploymentStatus,
		Income:              dto.Income,
		CivilStatus:         dto.CivilStatus,
		Religion:            dto.Religion,
		Classification:      dto.Classification,
		Needs:               dto.Needs,
		PantawidBeneficiary: dto.PantawidBeneficiary,
		IndigenousPerson:    dto.IndigenousPerson,
		EmergencyContact: models.EmergencyContact{
			Name:         dto.EmergencyName,
			Relationship: dto.EmergencyRelationship,
			Address:      dto.EmergencyAddress,
			Contact:      dto.EmergencyContact,
		},
		FamilyMembers: backend.FamilyMembers(dto.FamilyMembers),
		Documents:     backend.Documents(dto.Documents),
		Lifecycle:     models.LifecycleFrom(dto.Approval, dto.Status),
	}
	if ts, ok := backend.ParseTimestamp(dto.CreatedAt); ok {
		a.CreatedAt = ts
	}
	return a
}
