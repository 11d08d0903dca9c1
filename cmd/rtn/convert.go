package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rtn/internal/inspect/models"
)

type convertResponse struct {
	Input  string      `json:"input"`
	To     models.Form `json:"to"`
	Output string      `json:"output"`
}

func (a *app) newConvertCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a routing number between MICR and fraction form",
		Example: `  rtn convert --to fraction 111000025
  rtn convert --to micr 66-2/1110`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args[0], from, to)
		},
	}

	cmd.Flags().StringVar(&from, "from", string(models.FormAuto), "Input form: auto, micr or fraction")
	cmd.Flags().StringVar(&to, "to", string(models.FormMICR), "Output form: micr or fraction")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, input, fromName, toName string) error {
	from, err := models.ParseForm(fromName)
	if err != nil {
		return err
	}
	to, err := models.ParseForm(toName)
	if err != nil {
		return err
	}
	if to == models.FormAuto {
		return errors.New("--to must be micr or fraction")
	}

	res, err := a.inspect.Inspect(cmd.Context(), input, from)
	if err != nil {
		return err
	}
	if !res.Valid {
		return fmt.Errorf("%s: %s", res.Code, res.Reason)
	}

	out := res.MICR
	if to == models.FormFraction {
		out = res.Fraction
	}

	if a.jsonOutput() {
		return writeJSON(a.stdout, convertResponse{Input: input, To: to, Output: out})
	}
	fmt.Fprintln(a.stdout, out)
	return nil
}
