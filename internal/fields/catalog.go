package fields

// Field is one bindable entry shown in the editor's pickers. The
// compiler treats binding keys opaquely, so this catalog is advisory:
// it drives the UI, never validation.
type Field struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Example string `json:"example,omitempty"`
	Format  string `json:"format,omitempty"`
}

type Category struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Fields []Field `json:"fields"`
}

var catalog = []Category{
	{
		Name:  "company",
		Label: "Company",
		Fields: []Field{
			{Key: "company.name", Label: "Company Name", Example: "Acme Traders"},
			{Key: "company.address", Label: "Address", Example: "12 Market Road, Pune 411001"},
			{Key: "company.phone", Label: "Phone", Example: "+91 98765 43210"},
			{Key: "company.email", Label: "Email", Example: "billing@acmetraders.in"},
			{Key: "company.gstin", Label: "GSTIN", Example: "27AAEPM1234C1Z5"},
			{Key: "company.logo", Label: "Logo"},
			{Key: "company.bankName", Label: "Bank Name", Example: "State Bank of India"},
			{Key: "company.bankAccount", Label: "Account No", Example: "38012345678"},
			{Key: "company.bankIfsc", Label: "IFSC", Example: "SBIN0001234"},
			{Key: "company.terms", Label: "Terms & Conditions", Example: "Goods once sold will not be taken back."},
		},
	},
	{
		Name:  "invoice",
		Label: "Invoice",
		Fields: []Field{
			{Key: "invoice.number", Label: "Invoice No", Example: "INV-0042"},
			{Key: "invoice.date", Label: "Invoice Date", Example: "2026-04-01", Format: "date"},
			{Key: "invoice.dueDate", Label: "Due Date", Example: "2026-04-15", Format: "date"},
			{Key: "invoice.placeOfSupply", Label: "Place of Supply", Example: "Maharashtra"},
		},
	},
	{
		Name:  "party",
		Label: "Party",
		Fields: []Field{
			{Key: "party.name", Label: "Party Name", Example: "Sharma Stores"},
			{Key: "party.address", Label: "Party Address", Example: "8 Station Road, Mumbai 400001"},
			{Key: "party.phone", Label: "Party Phone", Example: "+91 91234 56780"},
			{Key: "party.gstin", Label: "Party GSTIN", Example: "27AABCS9876D1Z2"},
			{Key: "party.balance", Label: "Party Balance", Example: "12500.00", Format: "currency"},
		},
	},
	{
		Name:  "items",
		Label: "Line Items",
		Fields: []Field{
			{Key: "items.sno", Label: "Serial No", Example: "1", Format: "number"},
			{Key: "items.name", Label: "Item Name", Example: "Basmati Rice 5kg"},
			{Key: "items.hsn", Label: "HSN Code", Example: "1006"},
			{Key: "items.qty", Label: "Quantity", Example: "2", Format: "number"},
			{Key: "items.unit", Label: "Unit", Example: "bag"},
			{Key: "items.rate", Label: "Rate", Example: "640.00", Format: "currency"},
			{Key: "items.less", Label: "Less", Example: "40.00", Format: "currency"},
			{Key: "items.amount", Label: "Amount", Example: "1240.00", Format: "currency"},
		},
	},
	{
		Name:  "summary",
		Label: "Summary",
		Fields: []Field{
			{Key: "summary.subtotal", Label: "Subtotal", Example: "1240.00", Format: "currency"},
			{Key: "summary.tax", Label: "Tax", Example: "62.00", Format: "currency"},
			{Key: "summary.grandTotal", Label: "Grand Total", Example: "1302.00", Format: "currency"},
			{Key: "summary.oldBalance", Label: "Old Balance", Example: "500.00", Format: "currency"},
			{Key: "summary.billAmount", Label: "Bill Amount", Example: "1302.00", Format: "currency"},
			{Key: "summary.receivedAmount", Label: "Received", Example: "1000.00", Format: "currency"},
			{Key: "summary.balanceDue", Label: "Balance Due", Example: "802.00", Format: "currency"},
		},
	},
}

func Catalog() []Category {
	return catalog
}

// Lookup resolves one key across all categories.
func Lookup(key string) (Field, bool) {
	for _, cat := range catalog {
		for _, f := range cat.Fields {
			if f.Key == key {
				return f, true
			}
		}
	}
	return Field{}, false
}
