package model

import "time"

// MaterialOutward logs materials issued to a section or branch. Free-text
// material description, no Storage foreign key. Schema only.
type MaterialOutward struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	MaterialDetails string     `gorm:"type:varchar(256)" json:"material_details"`
	ReceiverSection string     `gorm:"type:varchar(128)" json:"receiver_section"` // in-company section or branch outward
	Qty             int        `json:"qty"`
	Date            *time.Time `gorm:"type:date" json:"date"`
	Reason          string     `gorm:"type:varchar(256)" json:"reason"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
