// Package area scrapes the third-party coverage table and implements the
// search, highlight and suggestion logic used by the area lookup tab.
package area

// Record is one row of the coverage table.
type Record struct {
	Province  string `json:"province"`
	Regency   string `json:"regency"`
	AreaLabel string `json:"area"`
}

// Fields returns the searchable fields in display order.
func (r Record) Fields() [3]string {
	return [3]string{r.Province, r.Regency, r.AreaLabel}
}

// Dataset is the coverage table in source row order. Duplicate rows are kept.
type Dataset []Record
