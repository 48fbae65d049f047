package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase order status
const (
	POStatusSent    = "sent"
	POStatusWaiting = "waiting"
	POStatusUnsent  = "unsent"
)

// PurchaseOrder records an order placed with a Dealer. MaterialName and Brand
// are deliberate denormalized copies, not Storage references. Schema only.
type PurchaseOrder struct {
	PONo         uint            `gorm:"column:po_no;primaryKey" json:"po_no"`
	MaterialName string          `gorm:"type:varchar(128)" json:"material_name"`
	Brand        string          `gorm:"type:varchar(128)" json:"brand"`
	DealerID     uint            `gorm:"index" json:"dealer_id"`
	Dealer       *Dealer         `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
	Qty          int             `json:"qty"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"price"`
	Discount     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discount"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total"`
	GST          decimal.Decimal `gorm:"column:gst;type:decimal(12,2);default:0" json:"gst"`
	GrandTotal   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"grand_total"`
	Date         *time.Time      `gorm:"type:date" json:"date"`
	Status       string          `gorm:"type:varchar(20)" json:"status"` // sent, waiting, unsent
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
