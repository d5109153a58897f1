package cmd

import (
	"errors"
	"fmt"

	"github.com/calcdev/scalc/internal/calc"
	"github.com/calcdev/scalc/internal/logger"
	"github.com/calcdev/scalc/internal/prompt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verbose bool

// inputReader acquires the operands and the operator. It is a package-level
// seam so tests can script a session without a terminal.
type inputReader interface {
	ReadOperand(message string) (int64, error)
	ReadOperator(message string) (rune, error)
}

var reader inputReader = prompt.NewReader()

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func runCalc(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verbose)

	color.Cyan("Simple Calculator")

	a, err := reader.ReadOperand("Enter first number:")
	if err != nil {
		return err
	}

	op, err := reader.ReadOperator("Enter operation (+, -, *, /):")
	if err != nil {
		return err
	}

	b, err := reader.ReadOperand("Enter second number:")
	if err != nil {
		return err
	}

	logger.Logger.Debug("inputs acquired", "first", a, "operator", string(op), "second", b)

	out := cmd.OutOrStdout()

	outcome, err := calc.Apply(calc.Operator(op), a, b)
	switch {
	case errors.Is(err, calc.ErrUnknownOperator):
		fmt.Fprintln(out, "Invalid operation")
		return nil
	case errors.Is(err, calc.ErrDivisionByZero):
		fmt.Fprintln(out, "Error: Cannot divide by zero")
		fmt.Fprintln(out, "Result: 0")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "Result: %s\n", outcome)
	return nil
}
