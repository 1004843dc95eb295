package dto

import "github.com/mergington/activities-api/internal/models"

// TeacherIdentity is the response shape for login and session checks. The
// password hash never appears here.
type TeacherIdentity struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// TeacherIdentityFromModel strips a teacher record down to its identity.
func TeacherIdentityFromModel(teacher models.Teacher) TeacherIdentity {
	return TeacherIdentity{
		Username:    teacher.Username,
		DisplayName: teacher.DisplayName,
		Role:        teacher.Role,
	}
}
