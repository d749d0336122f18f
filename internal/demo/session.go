package demo

import (
	"fmt"
	"io"

	"github.com/san-kum/rootlab/internal/input"
	"github.com/san-kum/rootlab/internal/target"
)

// InvalidInputMessage is printed when the starting values do not parse.
const InvalidInputMessage = "Error: invalid input. Please enter valid numbers."

// Session reads the inputs from in and runs every method. Invalid input
// ends the session before any solver is called.
func (r *Runner) Session(in io.Reader) ([]Outcome, error) {
	fmt.Fprintln(r.Out, r.Styles.Title.Render("--- Function zeros (numerical root finding) ---"))
	fmt.Fprintln(r.Out, "Function under analysis: f(x) = "+target.Expr)

	values, err := input.NewPrompter(in, r.Out).Collect()
	if err != nil {
		fmt.Fprintln(r.Out, r.Styles.Error.Render("\n"+InvalidInputMessage))
		return nil, err
	}

	return r.Run(values), nil
}
