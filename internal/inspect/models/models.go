package models

import (
	"fmt"

	"rtn/pkg/routing"
)

// Form selects which representation an input is parsed as.
type Form string

const (
	FormAuto     Form = "auto"
	FormMICR     Form = "micr"
	FormFraction Form = "fraction"
)

// ParseForm validates a form name. Empty selects FormAuto.
func ParseForm(s string) (Form, error) {
	switch f := Form(s); f {
	case "":
		return FormAuto, nil
	case FormAuto, FormMICR, FormFraction:
		return f, nil
	default:
		return "", fmt.Errorf("unknown form %q: want auto, micr or fraction", s)
	}
}

func (f Form) String() string {
	return string(f)
}

// Inspection is the outcome of parsing one input. Rejected inputs are
// reported with Valid=false and a Reason rather than as errors.
type Inspection struct {
	Input            string                 `json:"input"`
	Form             Form                   `json:"form"`
	Valid            bool                   `json:"valid"`
	MICR             string                 `json:"micr,omitempty"`
	Fraction         string                 `json:"fraction,omitempty"`
	FedRoutingSymbol string                 `json:"fed_routing_symbol,omitempty"`
	ABAInstitution   string                 `json:"aba_institution,omitempty"`
	CheckDigit       string                 `json:"check_digit,omitempty"`
	Prefix           string                 `json:"prefix,omitempty"`
	FedReserveType   routing.FedReserveType `json:"fed_reserve_type,omitempty"`
	Code             string                 `json:"code,omitempty"`
	Reason           string                 `json:"reason,omitempty"`
}

// Accepted builds an Inspection for a parsed routing number.
func Accepted(input string, form Form, rn routing.RoutingNumber) Inspection {
	return Inspection{
		Input:            input,
		Form:             form,
		Valid:            true,
		MICR:             rn.MICR(),
		Fraction:         rn.Fraction(),
		FedRoutingSymbol: rn.FedRoutingSymbol(),
		ABAInstitution:   rn.ABAInstitution(),
		CheckDigit:       rn.CheckDigit(),
		Prefix:           rn.Prefix(),
		FedReserveType:   rn.FederalReserveType(),
	}
}

// Rejected builds an Inspection for an input that failed to parse.
func Rejected(input string, form Form, code, reason string) Inspection {
	return Inspection{
		Input:  input,
		Form:   form,
		Code:   code,
		Reason: reason,
	}
}

// Summary counts outcomes across a batch of inspections.
type Summary struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// Summarize tallies results.
func Summarize(results []Inspection) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Valid {
			s.Accepted++
		} else {
			s.Rejected++
		}
	}
	return s
}
