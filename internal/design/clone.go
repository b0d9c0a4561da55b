package design

func (c *TableConfig) Clone() *TableConfig {
	if c == nil {
		return nil
	}
	out := *c
	if c.Columns != nil {
		out.Columns = make([]TableColumn, len(c.Columns))
		copy(out.Columns, c.Columns)
	}
	return &out
}

func (c *TotalsConfig) Clone() *TotalsConfig {
	if c == nil {
		return nil
	}
	out := *c
	if c.Rows != nil {
		out.Rows = make([]TotalsRow, len(c.Rows))
		copy(out.Rows, c.Rows)
	}
	return &out
}

func (e Element) Clone() Element {
	out := e
	out.Table = e.Table.Clone()
	out.Totals = e.Totals.Clone()
	return out
}

// Clone returns a structurally independent copy. Callers holding the
// result can never observe later edits to the source design.
func (d Design) Clone() Design {
	out := d
	if d.Elements != nil {
		out.Elements = make([]Element, len(d.Elements))
		for i, el := range d.Elements {
			out.Elements[i] = el.Clone()
		}
	}
	return out
}
