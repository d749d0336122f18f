// Package input collects the demo's starting values from a terminal.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned for the first value that is not a real number.
var ErrInvalidInput = errors.New("input: invalid number")

// Values are the four numbers the demo asks for.
type Values struct {
	A  float64 // bisection interval start
	B  float64 // bisection interval end
	X0 float64 // initial guess for Newton-Raphson and the generic solver
	X1 float64 // second guess for the secant method
}

// Prompts in the order they are asked.
var Prompts = []string{
	"\nEnter 'a' (start of the bisection interval): ",
	"Enter 'b' (end of the bisection interval): ",
	"Enter the initial guess 'x0' for Newton-Raphson and the generic solver: ",
	"Enter the second guess 'x1' for the secant method: ",
}

type Prompter struct {
	In  io.Reader
	Out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: in, Out: out}
}

// Collect asks for a, b, x0 and x1 in that order. It stops at the first
// value that does not parse; nothing read so far is returned.
func (p *Prompter) Collect() (Values, error) {
	scanner := bufio.NewScanner(p.In)
	fields := make([]float64, len(Prompts))

	for i, prompt := range Prompts {
		fmt.Fprint(p.Out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Values{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return Values{}, fmt.Errorf("%w: missing value", ErrInvalidInput)
		}
		v, err := Parse(scanner.Text())
		if err != nil {
			return Values{}, err
		}
		fields[i] = v
	}

	return Values{A: fields[0], B: fields[1], X0: fields[2], X1: fields[3]}, nil
}

// Parse reads one real number, ignoring surrounding whitespace.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return v, nil
}
