package reports

import (
	"strings"
	"time"
	"unicode"

	"soloparent/internal/dashboard"
	"soloparent/internal/exportquota"
)

// Filename names a generated report:
// SoloParent_<Section>_Report_<Region>_<start>_to_<end>_<generated>.<ext>
func Filename(section Section, format exportquota.Format, region string, r dashboard.DateRange, generatedAt time.Time) string {
	parts := []string{
		"SoloParent",
		section.Label(),
		"Report",
		fileSafe(region),
		r.StartLabel(),
		"to",
		r.EndLabel(),
		generatedAt.Format(dashboard.DateLayout),
	}
	return strings.Join(parts, "_") + "." + format.Extension()
}

// fileSafe keeps letters and digits and turns every other run into one underscore.
func fileSafe(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	if b.Len() == 0 {
		return "All"
	}
	return b.String()
}
