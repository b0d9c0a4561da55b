package models

import (
	"time"

	"gorm.io/gorm"
)

type PrintTemplate struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	VoucherType string         `gorm:"type:varchar(32);not null;index" json:"voucher_type"`
	DesignJSON  string         `gorm:"type:longtext" json:"design_json"` // serialized design document
	HeaderHTML  string         `gorm:"type:longtext" json:"header_html"`
	BodyHTML    string         `gorm:"type:longtext" json:"body_html"`
	FooterHTML  string         `gorm:"type:longtext" json:"footer_html"`
	StylesCSS   string         `gorm:"type:longtext" json:"styles_css"`
	Settings    string         `gorm:"type:longtext" json:"settings"` // JSON object of feature flags
	IsDefault   bool           `gorm:"default:false" json:"is_default"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

const (
	VoucherTypeSaleInvoice     = "sale_invoice"
	VoucherTypePurchaseBill    = "purchase_bill"
	VoucherTypeQuotation       = "quotation"
	VoucherTypePaymentReceipt  = "payment_receipt"
	VoucherTypeDeliveryChallan = "delivery_challan"
	VoucherTypeCreditNote      = "credit_note"
)

func IsAllowedVoucherType(t string) bool {
	switch t {
	case VoucherTypeSaleInvoice, VoucherTypePurchaseBill, VoucherTypeQuotation,
		VoucherTypePaymentReceipt, VoucherTypeDeliveryChallan, VoucherTypeCreditNote:
		return true
	default:
		return false
	}
}
