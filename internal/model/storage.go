package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Units a Storage row can be measured in. Stored as plain strings.
const (
	UnitNos    = "Nos"
	UnitKgs    = "Kgs"
	UnitMM     = "mm"
	UnitCM     = "cm"
	UnitLiters = "liters"
	UnitMeters = "meters"
	UnitPieces = "pieces"
	UnitPacks  = "packs"
)

// UnitsList is the fixed set of allowed units, in form display order.
var UnitsList = []string{UnitNos, UnitKgs, UnitMM, UnitCM, UnitLiters, UnitMeters, UnitPieces, UnitPacks}

// Storage is a raw material / stock item supplied by exactly one Dealer.
type Storage struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	BaseName            string          `gorm:"type:varchar(128);not null" json:"base_name"`
	DefinedNameWithSpec string          `gorm:"type:varchar(256)" json:"defined_name_with_spec"` // size/grade disambiguator
	Brand               string          `gorm:"type:varchar(128)" json:"brand"`
	HSNCode             string          `gorm:"column:hsn_code;type:varchar(32)" json:"hsn_code"`
	DealerID            uint            `gorm:"index;not null" json:"dealer_id"`
	Dealer              *Dealer         `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
	Tax                 decimal.Decimal `gorm:"type:decimal(8,4);default:0" json:"tax"`
	CurrentStock        decimal.Decimal `gorm:"type:decimal(14,3);default:0" json:"current_stock"`
	Units               string          `gorm:"type:varchar(32);not null" json:"units"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`

	// Relasi
	Products []Product `gorm:"many2many:product_material" json:"products,omitempty"`
}

// ValidUnit reports whether u is one of the enumerated unit strings.
func ValidUnit(u string) bool {
	for _, v := range UnitsList {
		if v == u {
			return true
		}
	}
	return false
}
