package dto

// ResultSet is a query result rendered as text: column names and one
// string per cell.
type ResultSet struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (r ResultSet) Len() int {
	return len(r.Rows)
}

func (r ResultSet) IsEmpty() bool {
	return len(r.Rows) == 0
}
