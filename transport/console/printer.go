package console

import (
	"fmt"
	"io"

	"hotel/shared/dto"
)

// Print writes the header once, then one line per row. Every value is
// followed by a tab. An empty set prints nothing. It returns the row count.
func Print(w io.Writer, rs dto.ResultSet) int {
	if rs.IsEmpty() {
		return 0
	}

	for _, column := range rs.Columns {
		fmt.Fprint(w, column+"\t")
	}

	fmt.Fprintln(w)

	for _, row := range rs.Rows {
		for _, value := range row {
			fmt.Fprint(w, value+"\t")
		}

		fmt.Fprintln(w)
	}

	return len(rs.Rows)
}
