package form

import (
	"strings"

	"leadform/models"
)

// Composite type labels derived from the two service-selection flags.
const (
	typeEmployment = "취업"
	typeLicense    = "자격증"
	typeBoth       = "취업+자격증"
)

// TypeLabel maps the two exclusive category flags onto the composite label
// transmitted to the consultation endpoint.
func TypeLabel(f models.FormFields) string {
	switch {
	case f.WantsEmployment && f.WantsLicense:
		return typeBoth
	case f.WantsEmployment:
		return typeEmployment
	case f.WantsLicense:
		return typeLicense
	}
	return ""
}

// stripDateSeparators reduces a date-ish string to its digits for
// transmission, e.g. "2026-09-15" -> "20260915".
func stripDateSeparators(date string) string {
	return nonDigit.ReplaceAllString(date, "")
}

// JoinCourses renders the course selection as one comma-separated string:
// selections in toggle order, the trimmed free-text entry last.
func JoinCourses(selected []string, custom string) string {
	parts := make([]string, 0, len(selected)+1)
	parts = append(parts, selected...)
	if trimmed := strings.TrimSpace(custom); trimmed != "" {
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, ", ")
}

// BuildRecord assembles the consultation payload from a submittable session.
func BuildRecord(sess *models.FormSession) models.ConsultationRecord {
	f := sess.Fields
	return models.ConsultationRecord{
		Name:          strings.TrimSpace(f.Name),
		Phone:         FormatPhone(f.Phone),
		Type:          TypeLabel(f),
		PreferredDate: stripDateSeparators(f.PreferredDate),
		Hope:          f.Hope == models.HopeYes,
		Courses:       JoinCourses(f.Courses, f.CustomCourse),
		PrivacyAgreed: f.PrivacyAgreed,
		ClickSource:   sess.ClickSource,
		Page:          sess.Page,
	}
}
