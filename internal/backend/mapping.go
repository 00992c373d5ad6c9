package backend

import "soloparent/pkg/domain"

// FamilyMembers maps backend household rows. Never returns nil.
func FamilyMembers(in []FamilyMemberDTO) []domain.FamilyMember {
	out := make([]domain.FamilyMember, 0, len(in))
	for _, m := range in {
		out = append(out, domain.FamilyMember{
			Name:         m.Name,
			Birthdate:    m.Birthdate,
			Age:          int(m.Age),
			Education:    m.Education,
			Occupation:   m.Occupation,
			Income:       m.Income,
			Relationship: m.Relationship,
			CivilStatus:  m.CivilStatus,
		})
	}
	return out
}

// Documents maps uploaded file rows. Never returns nil.
func Documents(in []DocumentDTO) []domain.Document {
	out := make([]domain.Document, 0, len(in))
	for _, d := range in {
		doc := domain.Document{
			Name:     d.DisplayName,
			FileName: d.FileName,
			URL:      d.FileURL,
			Type:     d.DocumentType,
			Status:   d.Status,
		}
		if doc.Name == "" {
			doc.Name = d.FileName
		}
		if ts, ok := ParseTimestamp(d.UploadedAt); ok {
			doc.UploadedAt = ts
		}
		out = append(out, doc)
	}
	return out
}
