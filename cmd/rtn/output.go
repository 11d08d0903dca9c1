package main

import (
	"encoding/json"
	"fmt"
	"io"

	"rtn/internal/inspect/models"
	"rtn/internal/platform/config"
)

func (a *app) jsonOutput() bool {
	return a.cfg.Output == config.OutputJSON
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeInspectionText(w io.Writer, r models.Inspection) {
	if r.Valid {
		fmt.Fprintf(w, "%-12s valid    micr=%s fraction=%s type=%s\n", r.Input, r.MICR, r.Fraction, r.FedReserveType)
		return
	}
	fmt.Fprintf(w, "%-12s invalid  %s: %s\n", r.Input, r.Code, r.Reason)
}
