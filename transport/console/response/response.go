package response

import (
	"fmt"
	"strconv"

	"hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/transport/console"

	"github.com/rs/zerolog/log"
)

const noDataFound = "No data found."

// WithMessage prints a success message framed by blank lines.
func WithMessage(session *console.Session, message string) {
	fmt.Fprintf(session.Out, "\n%s\n\n", message)
}

// WithError prints the error on the error stream and a failure notice
// naming the operation on the console.
func WithError(session *console.Session, err error, operation string) {
	log.Debug().Err(err).Str("kind", failure.GetKind(err).String()).Str("operation", operation).Msg("Operation failed")

	fmt.Fprintln(session.Err, err.Error())
	fmt.Fprintf(session.Out, "Failed to %s.\n", operation)
}

// WithCount prints a single labelled count, e.g. "Available rooms: 3".
func WithCount(session *console.Session, label string, count int) {
	fmt.Fprintf(session.Out, "%s: %d\n", label, count)
}

// WithTotal prints a single labelled amount with two decimals.
func WithTotal(session *console.Session, label string, total float64) {
	fmt.Fprintf(session.Out, "%s: %s\n", label, strconv.FormatFloat(total, 'f', 2, 64))
}

// WithResult streams the rows through the printer and returns how many were printed.
func WithResult(session *console.Session, rs dto.ResultSet) int {
	count := console.Print(session.Out, rs)

	log.Debug().Int("rows", count).Msg("Result printed")

	return count
}

// WithResultOrNotice is WithResult that says so when nothing matched.
func WithResultOrNotice(session *console.Session, rs dto.ResultSet) int {
	count := WithResult(session, rs)
	if count == 0 {
		fmt.Fprintln(session.Out, noDataFound)
	}

	return count
}
