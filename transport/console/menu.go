package console

import (
	"context"
	"fmt"
	"io"
	"sort"
)

const (
	menuTitle     = "MAIN MENU"
	menuUnderline = "---------"

	// ExitCode ends the menu loop.
	ExitCode  = 17
	exitLabel = "< EXIT"
)

// HandlerFunc runs one menu operation against the session. It reports
// everything it has to say through the session and returns nothing.
type HandlerFunc func(ctx context.Context, session *Session)

type Operation struct {
	Code  int
	Label string
	Run   HandlerFunc
}

// Menu is the code to operation table shown on every iteration.
type Menu struct {
	operations map[int]Operation
}

func NewMenu() *Menu {
	return &Menu{operations: map[int]Operation{}}
}

// Handle registers fn under code, replacing any previous registration.
func (m *Menu) Handle(code int, label string, fn HandlerFunc) {
	m.operations[code] = Operation{
		Code:  code,
		Label: label,
		Run:   fn,
	}
}

func (m *Menu) Lookup(code int) (Operation, bool) {
	op, ok := m.operations[code]

	return op, ok
}

func (m *Menu) Len() int {
	return len(m.operations)
}

// Render prints the menu in code order followed by the exit entry.
func (m *Menu) Render(w io.Writer) {
	codes := make([]int, 0, len(m.operations))
	for code := range m.operations {
		codes = append(codes, code)
	}

	sort.Ints(codes)

	fmt.Fprintln(w, menuTitle)
	fmt.Fprintln(w, menuUnderline)

	for _, code := range codes {
		fmt.Fprintf(w, "%d. %s\n", code, m.operations[code].Label)
	}

	fmt.Fprintf(w, "%d. %s\n", ExitCode, exitLabel)
}
