package form

import (
	"testing"

	"leadform/models"
)

func validFields() models.FormFields {
	return models.FormFields{
		Name:            "홍길동",
		Phone:           "010-1234-5678",
		WantsEmployment: true,
		PreferredDate:   "2026-09-15",
		Hope:            models.HopeYes,
		PrivacyAgreed:   true,
	}
}

func TestSubmittableAllValid(t *testing.T) {
	def := models.FormDefinition{Page: "main", InitialStep: models.StepContact}
	if !Submittable(def, validFields()) {
		t.Fatal("fully valid fields should be submittable")
	}
}

func TestSubmittableEachFieldNegated(t *testing.T) {
	def := models.FormDefinition{Page: "course", InitialStep: models.StepCourse, RequireDate: true}

	cases := []struct {
		name   string
		mutate func(f *models.FormFields)
	}{
		{"empty name", func(f *models.FormFields) { f.Name = " " }},
		{"empty phone", func(f *models.FormFields) { f.Phone = "" }},
		{"incomplete phone", func(f *models.FormFields) { f.Phone = "010-1234" }},
		{"invalid phone prefix", func(f *models.FormFields) { f.Phone = "021-1234-5678" }},
		{"no category selected", func(f *models.FormFields) {
			f.WantsEmployment = false
			f.WantsLicense = false
		}},
		{"hope not chosen", func(f *models.FormFields) { f.Hope = "" }},
		{"hope garbage value", func(f *models.FormFields) { f.Hope = "maybe" }},
		{"missing date", func(f *models.FormFields) { f.PreferredDate = "" }},
		{"privacy not agreed", func(f *models.FormFields) { f.PrivacyAgreed = false }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := validFields()
			c.mutate(&f)
			if Submittable(def, f) {
				t.Errorf("expected not submittable with %s", c.name)
			}
		})
	}
}

func TestSubmittableDateOptionalOnMainPage(t *testing.T) {
	def := models.FormDefinition{Page: "main", InitialStep: models.StepContact}
	f := validFields()
	f.PreferredDate = ""
	if !Submittable(def, f) {
		t.Fatal("date should not be required when the page does not ask for one")
	}
}

func TestSubmittableBothHopeValues(t *testing.T) {
	def := models.FormDefinition{Page: "main", InitialStep: models.StepContact}
	for _, hope := range []string{models.HopeYes, models.HopeNo} {
		f := validFields()
		f.Hope = hope
		if !Submittable(def, f) {
			t.Errorf("hope value %q should be acceptable", hope)
		}
	}
}
