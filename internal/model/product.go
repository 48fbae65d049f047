package model

import "time"

// Product is a manufactured item assembled from Storage raw materials.
type Product struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ProductName        string    `gorm:"type:varchar(128);not null" json:"product_name"`
	ProductDescription string    `gorm:"type:text" json:"product_description"`
	SectionName        string    `gorm:"type:varchar(128)" json:"section_name"`
	Qty                int       `gorm:"default:0" json:"qty"`
	Stock              int       `gorm:"default:0" json:"stock"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relasi (junction product_material carries only the two foreign keys)
	RawMaterialsUsed []Storage `gorm:"many2many:product_material" json:"raw_materials_used,omitempty"`
}
