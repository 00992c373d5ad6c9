package backend

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// FlexInt decodes integers the backend sends either as numbers or as quoted strings.
// Blank and null values decode to zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if strings.TrimSpace(s) == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	*f = FlexInt(int(n))
	return nil
}

// FlexBool decodes booleans sent as true/false, 0/1 or "0"/"1".
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	switch strings.Trim(strings.TrimSpace(string(b)), `"`) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the timestamp formats the backend emits.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ApplicantDTO is one row of GET /pendingUsersAdmin.
type ApplicantDTO struct {
	ID                    FlexInt           `json:"id"`
	CodeID                string            `json:"code_id"`
	FirstName             string            `json:"first_name"`
	MiddleName            string            `json:"middle_name"`
	LastName              string            `json:"last_name"`
	Suffix                string            `json:"suffix"`
	Age                   FlexInt           `json:"age"`
	Gender                string            `json:"gender"`
	DateOfBirth           string            `json:"date_of_birth"`
	PlaceOfBirth          string            `json:"place_of_birth"`
	Barangay              string            `json:"barangay"`
	Address               string            `json:"address"`
	Email                 string            `json:"email"`
	ContactNumber         string            `json:"contact_number"`
	Education             string            `json:"education"`
	Occupation            string            `json:"occupation"`
	Company               string            `json:"company"`
	EmploymentStatus      string            `json:"employment_status"`
	Income                string            `json:"income"`
	CivilStatus           string            `json:"civil_status"`
	Religion              string            `json:"religion"`
	Classification        string            `json:"classification"`
	Needs                 string            `json:"needs_problems"`
	PantawidBeneficiary   string            `json:"pantawid_beneficiary"`
	IndigenousPerson      string            `json:"indigenous"`
	EmergencyName         string            `json:"emergency_name"`
	EmergencyRelationship string            `json:"emergency_relationship"`
	EmergencyAddress      string            `json:"emergency_address"`
	EmergencyContact      string            `json:"emergency_contact"`
	FamilyMembers         []FamilyMemberDTO `json:"familyMembers"`
	Documents             []DocumentDTO     `json:"documents"`
	Approval              string            `json:"approval"`
	Status                string            `json:"status"`
	CreatedAt             string            `json:"created_at"`
}

type FamilyMemberDTO struct {
	Name         string  `json:"family_member_name"`
	Birthdate    string  `json:"birthdate"`
	Age          FlexInt `json:"age"`
	Education    string  `json:"educational_attainment"`
	Occupation   string  `json:"occupation"`
	Income       string  `json:"monthly_income"`
	Relationship string  `json:"relationship"`
	CivilStatus  string  `json:"civil_status"`
}

type DocumentDTO struct {
	DisplayName  string `json:"display_name"`
	FileName     string `json:"file_name"`
	FileURL      string `json:"file_url"`
	DocumentType string `json:"document_type"`
	Status       string `json:"status"`
	UploadedAt   string `json:"uploaded_at"`
}

// SoloParentDTO is one row of GET /verifiedUsers/:adminId.
type SoloParentDTO struct {
	ID               FlexInt           `json:"id"`
	UserID           FlexInt           `json:"user_id"`
	CodeID           string            `json:"code_id"`
	FirstName        string            `json:"first_name"`
	MiddleName       string            `json:"middle_name"`
	LastName         string            `json:"last_name"`
	Suffix           string            `json:"suffix"`
	Email            string            `json:"email"`
	Barangay         string            `json:"barangay"`
	Age              FlexInt           `json:"age"`
	Gender           string            `json:"gender"`
	DateOfBirth      string            `json:"date_of_birth"`
	EmploymentStatus string            `json:"employment_status"`
	Classification   string            `json:"classification"`
	ChildrenCount    FlexInt           `json:"number_of_children"`
	Status           string            `json:"status"`
	Remarks          string            `json:"remarks"`
	CreatedAt        string            `json:"created_at"`
	RemarksAt        string            `json:"remarks_at"`
	FamilyMembers    []FamilyMemberDTO `json:"familyMembers"`
	Documents        []DocumentDTO     `json:"documents"`
}

// ChildRequestDTO is one entry of GET /newchildrequest/by-barangay.
type ChildRequestDTO struct {
	ID              FlexInt `json:"id"`
	UserID          FlexInt `json:"user_id"`
	CodeID          string  `json:"code_id"`
	ParentFirstName string  `json:"parent_first_name"`
	ParentLastName  string  `json:"parent_last_name"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Birthdate       string  `json:"birthdate"`
	Age             FlexInt `json:"age"`
	Education       string  `json:"educational_attainment"`
	Barangay        string  `json:"barangay"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

// NotificationDTO is one entry of GET /api/adminnotifications.
type NotificationDTO struct {
	ID        FlexInt  `json:"id"`
	UserID    FlexInt  `json:"user_id"`
	NotifType string   `json:"notif_type"`
	Message   string   `json:"message"`
	IsRead    FlexBool `json:"is_read"`
	CreatedAt string   `json:"created_at"`
}

// ExportLimitDTO is the export quota snapshot returned by /api/export-limit.
type ExportLimitDTO struct {
	ExportCount    int  `json:"exportCount"`
	ExcelCount     int  `json:"excelCount"`
	PDFCount       int  `json:"pdfCount"`
	CanExport      bool `json:"canExport"`
	CanExportExcel bool `json:"canExportExcel"`
	CanExportPDF   bool `json:"canExportPdf"`
}

// DeclineApplicantRequest is the body of POST /updateUserStatus.
type DeclineApplicantRequest struct {
	CodeID    string `json:"code_id"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SaveRemarksRequest is the body of POST /saveRemarks.
type SaveRemarksRequest struct {
	CodeID  string `json:"code_id"`
	Remarks string `json:"remarks"`
	UserID  int    `json:"user_id"`
	AdminID string `json:"admin_id"`
}

// ActionResult is the {success, message} acknowledgement of child request actions.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type childRequestsEnvelope struct {
	Requests []ChildRequestDTO `json:"requests"`
}

type notificationsEnvelope struct {
	Success       bool              `json:"success"`
	Notifications []NotificationDTO `json:"notifications"`
}

var _ json.Unmarshaler = (*FlexInt)(nil)
