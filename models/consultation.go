package models

import "time"

// ConsultationRecord is the payload posted to the external consultation
// storage endpoint for one lead.
type ConsultationRecord struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Type          string `json:"type"`
	PreferredDate string `json:"preferredDate,omitempty"` // digits only
	Hope          bool   `json:"hope"`
	Courses       string `json:"courses,omitempty"`
	PrivacyAgreed bool   `json:"privacyAgreed"`
	ClickSource   string `json:"clickSource"`
	Page          string `json:"page"`
}

// Lead is the locally stored audit copy of an accepted consultation record.
type Lead struct {
	ID         string             `bson:"id" json:"id"`
	Record     ConsultationRecord `bson:"record" json:"record"`
	FollowedUp bool               `bson:"followedUp" json:"followedUp"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FollowupPayload is the asynq task payload for the delayed lead follow-up.
type FollowupPayload struct {
	LeadID string `json:"leadId"`
	Page   string `json:"page"`
}
