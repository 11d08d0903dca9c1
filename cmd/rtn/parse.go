package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtn/internal/inspect/models"
	pstrings "rtn/pkg/platform/strings"
)

type parseResponse struct {
	Results []models.Inspection `json:"results"`
	Summary models.Summary      `json:"summary"`
}

func (a *app) newParseCommand() *cobra.Command {
	var form string

	cmd := &cobra.Command{
		Use:   "parse <value>...",
		Short: "Validate routing numbers",
		Long: `Validate one or more routing numbers. Arguments may also be comma
separated. Each value is parsed as MICR or fraction form according to --form;
auto treats values containing a slash as fractions.

The command exits with status 1 when any value is rejected.`,
		Example: `  rtn parse 111000025
  rtn parse --form fraction 66-2/1110
  rtn parse -o json 111000025,130000022`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args, form)
		},
	}

	cmd.Flags().StringVar(&form, "form", string(models.FormAuto), "Input form: auto, micr or fraction")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string, formName string) error {
	form, err := models.ParseForm(formName)
	if err != nil {
		return err
	}

	var values []string
	for _, arg := range args {
		values = append(values, pstrings.SplitList(arg)...)
	}

	results, err := a.inspect.InspectAll(cmd.Context(), values, form)
	if err != nil {
		return fmt.Errorf("failed to inspect routing numbers: %w", err)
	}
	summary := models.Summarize(results)

	if a.jsonOutput() {
		if err := writeJSON(a.stdout, parseResponse{Results: results, Summary: summary}); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			writeInspectionText(a.stdout, r)
		}
	}

	if summary.Rejected > 0 {
		return fmt.Errorf("%d of %d routing numbers rejected", summary.Rejected, summary.Total)
	}
	return nil
}
