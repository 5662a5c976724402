package console_test

import (
	"bytes"
	"testing"

	"hotel/shared/dto"
	"hotel/transport/console"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	rs := dto.ResultSet{
		Columns: []string{"hotelid", "roomno"},
		Rows: [][]string{
			{"5", "101"},
			{"5", "102"},
		},
	}

	out := &bytes.Buffer{}
	count := console.Print(out, rs)

	assert.Equal(t, 2, count)
	assert.Equal(t, "hotelid\troomno\t\n5\t101\t\n5\t102\t\n", out.String())
}

func TestPrint_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	count := console.Print(out, dto.ResultSet{Columns: []string{"hotelid"}, Rows: [][]string{}})

	assert.Zero(t, count)
	assert.Empty(t, out.String())
}
