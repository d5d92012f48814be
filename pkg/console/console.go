// Package console is the injectable prompt/menu boundary for the
// interactive session. Tests drive it with scripted readers.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Console reads operator input and writes prompts and reports.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	warn    *color.Color
	errc    *color.Color
	header  *color.Color
	success *color.Color
}

// New creates a console over the given reader and writer.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		warn:    color.New(color.FgYellow),
		errc:    color.New(color.FgRed),
		header:  color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
	}
}

// Default creates a console over stdin/stdout.
func Default() *Console {
	return New(os.Stdin, os.Stdout)
}

// Printf writes plain output.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Headerf writes a highlighted section header.
func (c *Console) Headerf(format string, args ...interface{}) {
	c.header.Fprintf(c.out, format, args...)
}

// Warnf writes a non-blocking warning.
func (c *Console) Warnf(format string, args ...interface{}) {
	c.warn.Fprintf(c.out, "Warning: "+format, args...)
}

// Errorf writes an error report.
func (c *Console) Errorf(format string, args ...interface{}) {
	c.errc.Fprintf(c.out, "Error: "+format, args...)
}

// Successf writes a confirmation line.
func (c *Console) Successf(format string, args ...interface{}) {
	c.success.Fprintf(c.out, format, args...)
}

// Prompt asks for one line of input and returns it trimmed.
// Returns io.EOF when the input stream ends.
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// PromptInt asks for a number within [min, max] inclusive,
// re-prompting indefinitely on invalid input. Only an input stream
// error ends the loop.
func (c *Console) PromptInt(prompt string, min, max int) (int, error) {
	for {
		line, err := c.Prompt(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			c.Errorf("invalid input, please enter a number\n")
			continue
		}
		if n < min || n > max {
			c.Errorf("invalid choice, please enter a number between %d and %d\n", min, max)
			continue
		}
		return n, nil
	}
}

// Confirm asks a yes/no question, re-prompting until the answer is
// recognizable.
func (c *Console) Confirm(prompt string) (bool, error) {
	for {
		line, err := c.Prompt(prompt + " (yes/no): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		c.Errorf("invalid input, please enter 'yes' or 'no'\n")
	}
}
