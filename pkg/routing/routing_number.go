package routing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	micrPattern     = regexp.MustCompile(`^(\d{4})(\d{4})(\d)$`)
	fractionPattern = regexp.MustCompile(`^(?:([1-9]\d?)-)?(\d{1,4})/(\d{1,4})$`)
)

// RoutingNumber is a validated routing transit number.
//
// Invariants:
//   - fedRoutingSymbol and abaInstitution are exactly 4 digits
//   - checkDigit matches ComputeCheckDigit over those two fields
//   - fedRoutingSymbol starts with 00, 01-12, 21-32 or 61-72
//   - prefix is empty unless the value was parsed from fraction form
//
// The zero value is not a routing number; see IsZero.
type RoutingNumber struct {
	fedRoutingSymbol string
	abaInstitution   string
	checkDigit       int
	prefix           string
}

// ParseMICR parses the nine digit MICR form.
//
// Checks run in order: presence, shape, routing symbol range, check digit.
// The returned error wraps ErrInvalidInput, ErrInvalidFormat,
// ErrInvalidRoutingSymbol or ErrCheckDigitMismatch.
func ParseMICR(micr string) (RoutingNumber, error) {
	if micr == "" {
		return RoutingNumber{}, invalidInput(msgNullMICR)
	}
	m := micrPattern.FindStringSubmatch(micr)
	if m == nil {
		return RoutingNumber{}, invalidFormat(msgInvalidMICR)
	}

	symbol, institution := m[1], m[2]
	if _, ok := classifySymbol(symbol); !ok {
		return RoutingNumber{}, invalidSymbol()
	}

	want, err := ComputeCheckDigit(symbol, institution)
	if err != nil {
		return RoutingNumber{}, invalidFormat(msgInvalidMICR)
	}
	if int(m[3][0]-'0') != want {
		return RoutingNumber{}, checkDigitMismatch()
	}

	return RoutingNumber{
		fedRoutingSymbol: symbol,
		abaInstitution:   institution,
		checkDigit:       want,
	}, nil
}

// ParseFraction parses the fraction form "[PP-]institution/symbol".
//
// The numerator and denominator are zero padded to four digits and the
// check digit is computed. A prefix, when present, is kept for Fraction.
func ParseFraction(fraction string) (RoutingNumber, error) {
	if fraction == "" {
		return RoutingNumber{}, invalidInput(msgNullFraction)
	}
	m := fractionPattern.FindStringSubmatch(fraction)
	if m == nil {
		return RoutingNumber{}, invalidFormat(msgInvalidFraction)
	}

	prefix := m[1]
	institution := zeroPad4(m[2])
	symbol := zeroPad4(m[3])
	if _, ok := classifySymbol(symbol); !ok {
		return RoutingNumber{}, invalidSymbol()
	}

	check, err := ComputeCheckDigit(symbol, institution)
	if err != nil {
		return RoutingNumber{}, invalidFormat(msgInvalidFraction)
	}

	return RoutingNumber{
		fedRoutingSymbol: symbol,
		abaInstitution:   institution,
		checkDigit:       check,
		prefix:           prefix,
	}, nil
}

// Parse accepts either form: input containing a slash is parsed as a
// fraction, anything else as MICR.
func Parse(s string) (RoutingNumber, error) {
	if strings.Contains(s, "/") {
		return ParseFraction(s)
	}
	return ParseMICR(s)
}

// MustParseMICR is like ParseMICR but panics on error.
// Use only in tests or for values known to be valid.
func MustParseMICR(micr string) RoutingNumber {
	rn, err := ParseMICR(micr)
	if err != nil {
		panic(err)
	}
	return rn
}

// MustParseFraction is like ParseFraction but panics on error.
func MustParseFraction(fraction string) RoutingNumber {
	rn, err := ParseFraction(fraction)
	if err != nil {
		panic(err)
	}
	return rn
}

// FedRoutingSymbol returns the 4 digit Federal Reserve routing symbol.
func (r RoutingNumber) FedRoutingSymbol() string {
	return r.fedRoutingSymbol
}

// ABAInstitution returns the 4 digit ABA institution identifier.
func (r RoutingNumber) ABAInstitution() string {
	return r.abaInstitution
}

// CheckDigit returns the check digit as a single character.
func (r RoutingNumber) CheckDigit() string {
	if r.IsZero() {
		return ""
	}
	return strconv.Itoa(r.checkDigit)
}

// Prefix returns the fraction prefix, or "" when there is none.
func (r RoutingNumber) Prefix() string {
	return r.prefix
}

// HasPrefix reports whether the value was parsed from a prefixed fraction.
func (r RoutingNumber) HasPrefix() bool {
	return r.prefix != ""
}

// CalculateCheckDigit recomputes the check digit from the routing symbol
// and institution. It returns 0..9, or -1 for the zero value.
func (r RoutingNumber) CalculateCheckDigit() int {
	d, err := ComputeCheckDigit(r.fedRoutingSymbol, r.abaInstitution)
	if err != nil {
		return -1
	}
	return d
}

// MICR renders the nine digit form with no separators.
func (r RoutingNumber) MICR() string {
	if r.IsZero() {
		return ""
	}
	return r.fedRoutingSymbol + r.abaInstitution + strconv.Itoa(r.checkDigit)
}

// Fraction renders "[prefix-]institution/symbol" without leading zeros.
func (r RoutingNumber) Fraction() string {
	if r.IsZero() {
		return ""
	}
	var b strings.Builder
	if r.prefix != "" {
		b.WriteString(r.prefix)
		b.WriteByte('-')
	}
	b.WriteString(trimZeros(r.abaInstitution))
	b.WriteByte('/')
	b.WriteString(trimZeros(r.fedRoutingSymbol))
	return b.String()
}

// FederalReserveType classifies the routing symbol. The zero value
// returns the empty type.
func (r RoutingNumber) FederalReserveType() FedReserveType {
	t, _ := classifySymbol(r.fedRoutingSymbol)
	return t
}

// String returns the MICR form.
func (r RoutingNumber) String() string {
	return r.MICR()
}

// IsZero reports whether r is the zero value.
func (r RoutingNumber) IsZero() bool {
	return r.fedRoutingSymbol == ""
}

// Equal reports whether r and other are the same nine digit number.
// The fraction prefix is presentation only and is not compared.
func (r RoutingNumber) Equal(other RoutingNumber) bool {
	return r.fedRoutingSymbol == other.fedRoutingSymbol &&
		r.abaInstitution == other.abaInstitution &&
		r.checkDigit == other.checkDigit
}

// MarshalText encodes the MICR form. The zero value encodes as empty text.
func (r RoutingNumber) MarshalText() ([]byte, error) {
	return []byte(r.MICR()), nil
}

// UnmarshalText decodes either form via Parse. Empty text yields the zero value.
func (r *RoutingNumber) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = RoutingNumber{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func zeroPad4(s string) string {
	if len(s) >= 4 {
		return s
	}
	return strings.Repeat("0", 4-len(s)) + s
}

func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}
