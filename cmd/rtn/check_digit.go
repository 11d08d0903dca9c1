package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtn/pkg/routing"
)

type checkDigitResponse struct {
	Input      string `json:"input"`
	CheckDigit int    `json:"check_digit"`
}

func (a *app) newCheckDigitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-digit <8 digits>",
		Short: "Compute the check digit for a routing symbol and institution",
		Long: `Compute the ninth digit for the first eight digits of a routing number.
The routing symbol range is not checked, so this also works for numbers
outside the ranges parse accepts.`,
		Example: "  rtn check-digit 11100002",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheckDigit(args[0])
		},
	}
}

func (a *app) runCheckDigit(input string) error {
	if len(input) != 8 {
		return fmt.Errorf("expected 8 digits, got %d characters", len(input))
	}
	digit, err := routing.ComputeCheckDigit(input[:4], input[4:])
	if err != nil {
		return err
	}

	if a.jsonOutput() {
		return writeJSON(a.stdout, checkDigitResponse{Input: input, CheckDigit: digit})
	}
	fmt.Fprintln(a.stdout, digit)
	return nil
}
