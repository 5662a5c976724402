package console_test

import (
	"bytes"
	"context"
	"testing"

	"hotel/transport/console"

	"github.com/stretchr/testify/assert"
)

func TestMenu_Render(t *testing.T) {
	menu := console.NewMenu()
	noop := func(context.Context, *console.Session) {}

	menu.Handle(2, "Add new room", noop)
	menu.Handle(1, "Add new customer", noop)
	menu.Handle(10, "Get hotel bookings for a week", noop)

	out := &bytes.Buffer{}
	menu.Render(out)

	expected := "MAIN MENU\n" +
		"---------\n" +
		"1. Add new customer\n" +
		"2. Add new room\n" +
		"10. Get hotel bookings for a week\n" +
		"17. < EXIT\n"

	assert.Equal(t, expected, out.String())
}

func TestMenu_Lookup(t *testing.T) {
	menu := console.NewMenu()
	menu.Handle(8, "Get number of available rooms", func(context.Context, *console.Session) {})

	op, ok := menu.Lookup(8)
	assert.True(t, ok)
	assert.Equal(t, 8, op.Code)
	assert.Equal(t, "Get number of available rooms", op.Label)
	assert.NotNil(t, op.Run)

	_, ok = menu.Lookup(99)
	assert.False(t, ok)
	assert.Equal(t, 1, menu.Len())
}
