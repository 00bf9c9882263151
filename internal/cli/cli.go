// Package cli implements the interactive conversion loop: prompt for a
// source unit, prompt for a value, print the converted equation.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Utility-Gods/tempcon/internal/format"
	"github.com/Utility-Gods/tempcon/internal/temperature"
)

// ErrQuit reports that the user typed the quit keyword at a prompt. It is
// a normal termination, distinct from an I/O failure, so the caller can
// exit zero without printing a result.
var ErrQuit = errors.New("user requested quit")

const quitKeyword = "quit"

const (
	promptUnit = "Enter C to convert to Fahrenheit or F to convert to Celsius"
	errorUnit  = "Invalid input. Please enter 'C' or 'F'."
	errorValue = "Invalid temperature. Please enter a number."
)

// CLI drives one conversion cycle over a line-oriented reader and writer.
type CLI struct {
	in     *bufio.Scanner
	out    io.Writer
	styles Styles
}

// New returns a CLI reading lines from in and writing to out.
func New(in io.Reader, out io.Writer) *CLI {
	return &CLI{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: DefaultStyles(),
	}
}

// Run performs a single prompt→convert→print cycle. It returns nil after
// printing a conversion, ErrQuit if the user typed the quit keyword, and
// the underlying read error if standard input fails or ends.
func (c *CLI) Run() error {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.Header.Render("--- Temperature Conversion ---"))

	unit, err := promptFor(c, promptUnit, errorUnit, temperature.ParseUnit)
	if err != nil {
		return err
	}

	var promptValue string
	switch unit {
	case temperature.Celsius:
		promptValue = "Enter a number to convert Celsius to Fahrenheit."
	default:
		promptValue = "Enter a number to convert Fahrenheit to Celsius."
	}

	value, err := promptFor(c, promptValue, errorValue, parseValue)
	if err != nil {
		return err
	}

	original := temperature.New(value, unit)
	converted := original.ConvertTo(unit.Opposite())

	fmt.Fprintln(c.out, c.styles.Result.Render(format.Equation(value, unit, converted)))
	return nil
}

// promptFor re-prompts until a line parses, the user quits, or the read
// fails. The quit keyword is checked before parsing.
func promptFor[T any](c *CLI, prompt, invalid string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		fmt.Fprintf(c.out, "\nType \"%s\" to end the program or\n%s\n", c.styles.Keyword.Render("QUIT"), prompt)

		line, err := c.readLine()
		if err != nil {
			return zero, err
		}
		if line == quitKeyword {
			fmt.Fprintln(c.out, c.styles.Notice.Render("Exiting program."))
			return zero, ErrQuit
		}

		value, err := parse(line)
		if err != nil {
			fmt.Fprintln(c.out, c.styles.Error.Render(invalid))
			continue
		}
		return value, nil
	}
}

// readLine reads one line, trimmed and lowercased. End of input surfaces
// as io.EOF wrapped in the returned error.
func (c *CLI) readLine() (string, error) {
	if !c.in.Scan() {
		err := c.in.Err()
		if err == nil {
			err = io.EOF
		}
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(c.in.Text())), nil
}

func parseValue(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
