package models

// Step is one screen of the form wizard. The wizard only ever moves forward;
// StepDone is terminal.
type Step int

const (
	StepCourse  Step = 1
	StepContact Step = 2
	StepDone    Step = 3
)

// Values accepted for the support-hope choice.
const (
	HopeYes = "희망"
	HopeNo  = "비희망"
)

// FormFields is the mutable record of user-entered values for one page view.
type FormFields struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"` // hyphenated display form
	WantsEmployment bool     `json:"wantsEmployment"`
	WantsLicense    bool     `json:"wantsLicense"`
	PreferredDate   string   `json:"preferredDate"`
	Hope            string   `json:"hope"` // 희망 or 비희망
	PrivacyAgreed   bool     `json:"privacyAgreed"`
	Courses         []string `json:"courses,omitempty"`
	CustomCourse    string   `json:"customCourse,omitempty"`
}

// FieldUpdate carries a partial update to FormFields. Nil pointers leave the
// corresponding field untouched.
type FieldUpdate struct {
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	WantsEmployment *bool   `json:"wantsEmployment,omitempty"`
	WantsLicense    *bool   `json:"wantsLicense,omitempty"`
	PreferredDate   *string `json:"preferredDate,omitempty"`
	Hope            *string `json:"hope,omitempty"`
	PrivacyAgreed   *bool   `json:"privacyAgreed,omitempty"`
}

// FormSession holds context for one visitor working through a form page.
type FormSession struct {
	SessionID   string     `json:"sessionId"`
	Page        string     `json:"page"`
	ClickSource string     `json:"clickSource"`
	Step        Step       `json:"step"`
	Fields      FormFields `json:"fields"`
}

// FormSessionResponse is what the flow endpoints return to the page: the
// session plus the derived validity state the page renders from.
type FormSessionResponse struct {
	Session     *FormSession `json:"session"`
	PhoneValid  bool         `json:"phoneValid"`
	PhoneError  string       `json:"phoneError,omitempty"`
	Submittable bool         `json:"submittable"`
}

// FormDefinition describes one registered landing page: its campaign constant
// for the click-source label, the step the wizard opens on, and which fields
// the page collects.
type FormDefinition struct {
	Page         string `json:"page"`
	Campaign     string `json:"campaign"`
	InitialStep  Step   `json:"initialStep"`
	CoursePicker bool   `json:"coursePicker"`
	RequireDate  bool   `json:"requireDate"`
}
