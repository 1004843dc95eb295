package models

// Teacher represents a staff account allowed to manage activity rosters.
// Password holds an argon2id hash and is never serialized into responses.
type Teacher struct {
	Username    string `gorm:"primaryKey;size:255" json:"username"`
	DisplayName string `gorm:"size:255;not null" json:"display_name"`
	Role        string `gorm:"size:32;not null" json:"role"`
	Password    string `gorm:"size:255;not null" json:"-"`
}
