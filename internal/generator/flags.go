package generator

// Flags gate the optional blocks of a generated default design. The
// JSON names match the settings payload stored per template.
type Flags struct {
	ShowLogo           bool `json:"show_logo"`
	ShowCompanyAddress bool `json:"show_company_address"`
	ShowGSTIN          bool `json:"show_gstin"`
	ShowBankDetails    bool `json:"show_bank_details"`
	ShowSignature      bool `json:"show_signature"`
	ShowTerms          bool `json:"show_terms"`
	ShowItemHSN        bool `json:"show_item_hsn"`
	ShowLessColumn     bool `json:"show_less_column"`
}

// DefaultFlags enables everything except the per-item deduction column,
// which most templates do not use.
func DefaultFlags() Flags {
	return Flags{
		ShowLogo:           true,
		ShowCompanyAddress: true,
		ShowGSTIN:          true,
		ShowBankDetails:    true,
		ShowSignature:      true,
		ShowTerms:          true,
		ShowItemHSN:        true,
		ShowLessColumn:     false,
	}
}
