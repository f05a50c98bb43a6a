package form

import (
	"strings"

	"leadform/models"
)

// Submittable reports whether every required field of the page satisfies its
// local validity predicate at once. No partial submission is possible.
func Submittable(def models.FormDefinition, f models.FormFields) bool {
	if strings.TrimSpace(f.Name) == "" {
		return false
	}
	if !phoneComplete(f.Phone) {
		return false
	}
	if !f.WantsEmployment && !f.WantsLicense {
		return false
	}
	if f.Hope != models.HopeYes && f.Hope != models.HopeNo {
		return false
	}
	if def.RequireDate && strings.TrimSpace(f.PreferredDate) == "" {
		return false
	}
	if !f.PrivacyAgreed {
		return false
	}
	return true
}

// sessionResponse bundles a session with its derived validity state.
func sessionResponse(def models.FormDefinition, sess *models.FormSession) *models.FormSessionResponse {
	valid, msg := ValidatePhone(sess.Fields.Phone)
	return &models.FormSessionResponse{
		Session:     sess,
		PhoneValid:  valid,
		PhoneError:  msg,
		Submittable: Submittable(def, sess.Fields),
	}
}
