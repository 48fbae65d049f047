package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialInward logs a delivery received against a PurchaseOrder. DealerName
// is a denormalized copy of the dealer on the PO. Schema only.
type MaterialInward struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	PONo             uint            `gorm:"column:po_no;index" json:"po_no"`
	PO               *PurchaseOrder  `gorm:"belongsTo;foreignKey:PONo;references:PONo" json:"po,omitempty"`
	DealerName       string          `gorm:"type:varchar(128)" json:"dealer_name"`
	PODate           *time.Time      `gorm:"column:po_date;type:date" json:"po_date"`
	DateOfInward     *time.Time      `gorm:"type:date" json:"date_of_inward"`
	BillNo           string          `gorm:"type:varchar(64)" json:"bill_no"`
	BillDate         *time.Time      `gorm:"type:date" json:"bill_date"`
	Cost             decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"cost"`
	PaymentMethod    string          `gorm:"type:varchar(64)" json:"payment_method"` // cash paid, bank transfer
	PendingMaterials string          `gorm:"type:text" json:"pending_materials"`     // free-text record of not-yet-received items
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
