package models

import "gorm.io/datatypes"

// ScheduleDetails captures the structured schedule of an activity. Times are
// 24-hour zero-padded HH:MM strings and are compared lexicographically, never
// parsed as clock values.
type ScheduleDetails struct {
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

// Activity represents one extracurricular offering. The name acts as the
// primary key; ScheduleDetails is nil for records imported without a
// structured schedule.
type Activity struct {
	Name            string                      `gorm:"primaryKey;size:255" json:"-"`
	Description     string                      `gorm:"type:text" json:"description"`
	Schedule        string                      `gorm:"size:255" json:"schedule"`
	ScheduleDetails *ScheduleDetails            `gorm:"type:json;serializer:json" json:"schedule_details,omitempty"`
	MaxParticipants int                         `json:"max_participants"`
	Participants    datatypes.JSONSlice[string] `gorm:"type:json" json:"participants"`
}

// HasParticipant reports whether the email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}
