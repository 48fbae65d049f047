package model

import "time"

// BOM is a bill of materials for one Product. Schema only for now: rows are
// migrated but no CRUD surface is attached yet.
type BOM struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	ProductID         uint       `gorm:"index" json:"product_id"`
	Product           *Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductQuantity   int        `json:"product_quantity"`
	Consignee         string     `gorm:"type:varchar(128)" json:"consignee"`
	Date              *time.Time `gorm:"type:date" json:"date"`
	MaterialCollected bool       `gorm:"default:false" json:"material_collected"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (BOM) TableName() string {
	return "boms"
}
