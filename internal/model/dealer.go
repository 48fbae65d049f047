package model

import "time"

// Dealer is a supplier of raw materials. One dealer owns many Storage rows.
type Dealer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	Address   string    `gorm:"type:varchar(250)" json:"address"`
	State     string    `gorm:"type:varchar(100)" json:"state"`
	Country   string    `gorm:"type:varchar(100)" json:"country"`
	Pincode   string    `gorm:"type:varchar(20)" json:"pincode"`
	Telephone string    `gorm:"type:varchar(50)" json:"telephone"` // landline
	Mobile    string    `gorm:"type:varchar(50)" json:"mobile"`
	Email     string    `gorm:"type:varchar(120)" json:"email"`
	GSTNo     string    `gorm:"column:gst_no;type:varchar(50)" json:"gst_no"`
	BankName  string    `gorm:"type:varchar(100)" json:"bank_name"`
	AccountNo string    `gorm:"type:varchar(100)" json:"account_no"`
	IFSCCode  string    `gorm:"column:ifsc_code;type:varchar(50)" json:"ifsc_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relasi
	Materials []Storage `gorm:"foreignKey:DealerID" json:"materials,omitempty"`
}
