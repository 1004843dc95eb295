package dto

import "github.com/mergington/activities-api/internal/models"

// ActivityDetail mirrors a stored activity record without its name; callers
// receive the name as the key of the listing map.
type ActivityDetail struct {
	Description     string                  `json:"description"`
	Schedule        string                  `json:"schedule"`
	ScheduleDetails *models.ScheduleDetails `json:"schedule_details,omitempty"`
	MaxParticipants int                     `json:"max_participants"`
	Participants    []string                `json:"participants"`
}

// MessageResponse is the payload returned by roster mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActivityDetailFromModel converts a stored activity into its response form.
func ActivityDetailFromModel(activity models.Activity) ActivityDetail {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}

	return ActivityDetail{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		ScheduleDetails: activity.ScheduleDetails,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}
