package routing

import (
	"errors"

	dErrors "rtn/pkg/domain-errors"
)

// Parse failures. Every error returned by the parse functions wraps exactly
// one of these, so callers can match with errors.Is.
var (
	ErrInvalidInput         = errors.New("routing number is required")
	ErrInvalidFormat        = errors.New("invalid routing number format")
	ErrInvalidRoutingSymbol = errors.New("invalid federal routing symbol")
	ErrCheckDigitMismatch   = errors.New("check digit mismatch")
)

const (
	msgNullMICR            = "Null MICR"
	msgNullFraction        = "Null fraction"
	msgInvalidMICR         = "Invalid MICR format"
	msgInvalidFraction     = "Invalid fraction format"
	msgInvalidSymbol       = "Invalid Federal Routing Symbol"
	msgCheckDigitIncorrect = "Check Digit not correct"
)

func invalidInput(msg string) error {
	return dErrors.Wrap(ErrInvalidInput, dErrors.CodeInvalidInput, msg)
}

func invalidFormat(msg string) error {
	return dErrors.Wrap(ErrInvalidFormat, dErrors.CodeValidation, msg)
}

func invalidSymbol() error {
	return dErrors.Wrap(ErrInvalidRoutingSymbol, dErrors.CodeValidation, msgInvalidSymbol)
}

func checkDigitMismatch() error {
	return dErrors.Wrap(ErrCheckDigitMismatch, dErrors.CodeValidation, msgCheckDigitIncorrect)
}
