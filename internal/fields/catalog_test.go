package fields

import "testing"

func TestCatalogCoversGeneratedBindings(t *testing.T) {
	// every binding the default designs emit must be pickable
	needed := []string{
		"company.name", "company.address", "company.phone", "company.gstin",
		"company.logo", "company.bankName", "company.bankAccount", "company.bankIfsc",
		"company.terms",
		"invoice.number", "invoice.date",
		"party.name", "party.address",
		"items.sno", "items.name", "items.hsn", "items.qty", "items.rate",
		"items.less", "items.amount",
		"summary.subtotal", "summary.tax", "summary.grandTotal",
		"summary.oldBalance", "summary.billAmount", "summary.receivedAmount",
		"summary.balanceDue",
	}
	for _, key := range needed {
		if _, ok := Lookup(key); !ok {
			t.Errorf("catalog missing %s", key)
		}
	}
}

func TestCatalogKeysCarryCategoryPrefix(t *testing.T) {
	for _, cat := range Catalog() {
		if len(cat.Fields) == 0 {
			t.Errorf("category %s is empty", cat.Name)
		}
		for _, f := range cat.Fields {
			prefix := cat.Name + "."
			if len(f.Key) <= len(prefix) || f.Key[:len(prefix)] != prefix {
				t.Errorf("field %s not under category %s", f.Key, cat.Name)
			}
		}
	}
}

func TestLookupUnknownKey(t *testing.T) {
	if _, ok := Lookup("ledger.debit"); ok {
		t.Errorf("unknown key must not resolve")
	}
}
