package model

import "time"

// Section is a production section of the factory. Schema only.
type Section struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	SectionName              string    `gorm:"type:varchar(128)" json:"section_name"`
	ProductsTheyCreate       string    `gorm:"type:text" json:"products_they_create"`
	InventoryDetails         string    `gorm:"type:text" json:"inventory_details"`
	ProductDevelopmentStatus string    `gorm:"type:varchar(256)" json:"product_development_status"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
