package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtn/pkg/routing"
)

type rangeResponse struct {
	Low  string                 `json:"low"`
	High string                 `json:"high"`
	Type routing.FedReserveType `json:"type"`
}

func (a *app) newRangesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges",
		Short: "List accepted Federal Reserve routing symbol ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRanges()
		},
	}
}

func (a *app) runRanges() error {
	ranges := routing.SymbolRanges()

	if a.jsonOutput() {
		out := make([]rangeResponse, 0, len(ranges))
		for _, r := range ranges {
			out = append(out, rangeResponse{
				Low:  fmt.Sprintf("%02d", r.Low),
				High: fmt.Sprintf("%02d", r.High),
				Type: r.Type,
			})
		}
		return writeJSON(a.stdout, out)
	}

	for _, r := range ranges {
		fmt.Fprintf(a.stdout, "%02d-%02d  %s\n", r.Low, r.High, r.Type)
	}
	return nil
}
