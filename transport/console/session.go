package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	choicePrompt  = "Please make your choice: "
	invalidChoice = "Your input is invalid!"
)

// Session is the line oriented terminal of one user.
// Out receives prompts and results, Err receives error messages.
type Session struct {
	reader *bufio.Reader
	Out    io.Writer
	Err    io.Writer
}

func NewSession(in io.Reader, out, errOut io.Writer) *Session {
	return &Session{
		reader: bufio.NewReader(in),
		Out:    out,
		Err:    errOut,
	}
}

func NewStdSession() *Session {
	return NewSession(os.Stdin, os.Stdout, os.Stderr)
}

// Field binds a prompt label to the string it fills.
type Field struct {
	Label string
	Value *string
}

// Prompt prints "\t<label> $" and returns the next line without its line ending.
func (s *Session) Prompt(label string) (string, error) {
	fmt.Fprintf(s.Out, "\t%s $", label)

	return s.readLine()
}

// Fields prompts for every field in order and stops at the first read error.
func (s *Session) Fields(fields ...Field) error {
	for _, field := range fields {
		value, err := s.Prompt(field.Label)
		if err != nil {
			return err
		}

		*field.Value = value
	}

	return nil
}

// ReadChoice keeps asking until an integer is typed. It only fails on a closed input.
func (s *Session) ReadChoice() (int, error) {
	for {
		fmt.Fprint(s.Out, choicePrompt)

		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return choice, nil
		}

		fmt.Fprintln(s.Out, invalidChoice)
	}
}

func (s *Session) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		// a last line without newline still counts
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}

		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}

		return "", fmt.Errorf("failed to read console input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
