package routing_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "rtn/pkg/domain-errors"
	"rtn/pkg/routing"
)

type RoutingNumberSuite struct {
	suite.Suite
}

func TestRoutingNumberSuite(t *testing.T) {
	suite.Run(t, new(RoutingNumberSuite))
}

func (s *RoutingNumberSuite) TestParseMICR_Valid() {
	rn, err := routing.ParseMICR("111000025")
	s.Require().NoError(err)

	s.Equal("1110", rn.FedRoutingSymbol())
	s.Equal("0002", rn.ABAInstitution())
	s.Equal("5", rn.CheckDigit())
	s.Equal(5, rn.CalculateCheckDigit())
	s.Equal("111000025", rn.MICR())
	s.Equal("2/1110", rn.Fraction())
	s.Equal("111000025", rn.String())
	s.False(rn.HasPrefix())
	s.Empty(rn.Prefix())
	s.False(rn.IsZero())
	s.Equal(routing.FedReserveTypePrimary, rn.FederalReserveType())
}

func (s *RoutingNumberSuite) TestParseMICR_Rejections() {
	s.Run("empty input is invalid input", func() {
		_, err := routing.ParseMICR("")
		s.Require().Error(err)
		s.ErrorIs(err, routing.ErrInvalidInput)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("wrong length is invalid format", func() {
		_, err := routing.ParseMICR("1234")
		s.Require().Error(err)
		s.ErrorIs(err, routing.ErrInvalidFormat)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown symbol range names the symbol", func() {
		_, err := routing.ParseMICR("130000022")
		s.Require().Error(err)
		s.ErrorIs(err, routing.ErrInvalidRoutingSymbol)
		s.Equal("Invalid Federal Routing Symbol", err.Error())
	})

	s.Run("symbol 12 is valid so a bad digit is a mismatch", func() {
		_, err := routing.ParseMICR("123456789")
		s.Require().Error(err)
		s.ErrorIs(err, routing.ErrCheckDigitMismatch)
		s.NotErrorIs(err, routing.ErrInvalidRoutingSymbol)
	})

	s.Run("off by one check digit", func() {
		_, err := routing.ParseMICR("111000026")
		s.Require().Error(err)
		s.ErrorIs(err, routing.ErrCheckDigitMismatch)
		s.Equal("Check Digit not correct", err.Error())
	})

	s.Run("symbol is checked before check digit", func() {
		// 50 is outside every range and 9 is not the computed digit
		_, err := routing.ParseMICR("500000009")
		s.Require().Error(err)
		s.ErrorIs(err, routing.ErrInvalidRoutingSymbol)
	})
}

func (s *RoutingNumberSuite) TestParseMICR_Format() {
	tests := []struct {
		name  string
		input string
	}{
		{"eight digits", "11100002"},
		{"ten digits", "1110000250"},
		{"dashes", "1110-0002-5"},
		{"leading space", " 111000025"},
		{"trailing newline", "111000025\n"},
		{"letter", "11100002a"},
		{"fullwidth digits", "１１１０００２５"},
		{"fraction form", "2/1110"},
		{"null byte", "11100002\x005"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := routing.ParseMICR(tt.input)
			s.Require().Error(err)
			s.ErrorIs(err, routing.ErrInvalidFormat)
		})
	}
}

func (s *RoutingNumberSuite) TestParseMICR_SymbolRanges() {
	tests := []struct {
		input    string
		wantType routing.FedReserveType
		wantErr  bool
	}{
		{"000000000", routing.FedReserveTypeGovernment, false},
		{"011000015", routing.FedReserveTypePrimary, false},
		{"021000021", routing.FedReserveTypePrimary, false},
		{"100000010", routing.FedReserveTypePrimary, false},
		{"211000006", routing.FedReserveTypeThrift, false},
		{"611000004", routing.FedReserveTypeElectronic, false},

		// Outside the accepted ranges, including internal-use 50-59,
		// traveler's checks 80 and legacy 81-92.
		{"130000022", "", true},
		{"200000000", "", true},
		{"330000000", "", true},
		{"500000000", "", true},
		{"590000000", "", true},
		{"600000000", "", true},
		{"730000000", "", true},
		{"800000000", "", true},
		{"810000000", "", true},
		{"920000000", "", true},
		{"990000000", "", true},
	}

	for _, tt := range tests {
		s.Run(tt.input, func() {
			rn, err := routing.ParseMICR(tt.input)
			if tt.wantErr {
				s.Require().Error(err)
				s.ErrorIs(err, routing.ErrInvalidRoutingSymbol)
				return
			}
			s.Require().NoError(err)
			s.Equal(tt.wantType, rn.FederalReserveType())
			s.Equal(tt.input, rn.MICR())
		})
	}
}

func (s *RoutingNumberSuite) TestCheckDigitWrapsToZero() {
	// Weighted sum of 10000001 is 10, so the digit is 0 rather than 10.
	rn, err := routing.ParseMICR("100000010")
	s.Require().NoError(err)
	s.Equal("0", rn.CheckDigit())
	s.Equal(0, rn.CalculateCheckDigit())
}

func (s *RoutingNumberSuite) TestParseFraction() {
	s.Run("prefixed fraction", func() {
		rn, err := routing.ParseFraction("66-2/1110")
		s.Require().NoError(err)
		s.Equal("1110", rn.FedRoutingSymbol())
		s.Equal("0002", rn.ABAInstitution())
		s.Equal("5", rn.CheckDigit())
		s.Equal("111000025", rn.MICR())
		s.Equal("66-2/1110", rn.Fraction())
		s.Equal("66", rn.Prefix())
		s.True(rn.HasPrefix())
	})

	s.Run("bare fraction", func() {
		rn, err := routing.ParseFraction("2/1110")
		s.Require().NoError(err)
		s.Equal("111000025", rn.MICR())
		s.Equal("2/1110", rn.Fraction())
		s.False(rn.HasPrefix())
	})

	s.Run("single digit prefix and short fields", func() {
		rn, err := routing.ParseFraction("1-1/1")
		s.Require().NoError(err)
		s.Equal("0001", rn.FedRoutingSymbol())
		s.Equal("0001", rn.ABAInstitution())
		s.Equal("0", rn.CheckDigit())
		s.Equal("1-1/1", rn.Fraction())
		s.Equal(routing.FedReserveTypeGovernment, rn.FederalReserveType())
	})

	s.Run("all zero fields render as 0", func() {
		rn, err := routing.ParseFraction("0/0")
		s.Require().NoError(err)
		s.Equal("000000000", rn.MICR())
		s.Equal("0/0", rn.Fraction())
	})

	s.Run("leading zeros in input are dropped on render", func() {
		rn, err := routing.ParseFraction("0002/1110")
		s.Require().NoError(err)
		s.Equal("2/1110", rn.Fraction())
	})

	s.Run("empty input is invalid input", func() {
		_, err := routing.ParseFraction("")
		s.Require().Error(err)
		s.ErrorIs(err, routing.ErrInvalidInput)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("symbol outside ranges", func() {
		_, err := routing.ParseFraction("2/1310")
		s.Require().Error(err)
		s.ErrorIs(err, routing.ErrInvalidRoutingSymbol)
		s.Equal("Invalid Federal Routing Symbol", err.Error())
	})
}

func (s *RoutingNumberSuite) TestParseFraction_Format() {
	tests := []struct {
		name  string
		input string
	}{
		{"no slash", "21110"},
		{"zero prefix", "0-2/1110"},
		{"leading zero prefix", "06-2/1110"},
		{"three digit prefix", "100-2/1110"},
		{"dangling dash", "66-/1110"},
		{"empty numerator", "/1110"},
		{"empty denominator", "2/"},
		{"five digit numerator", "12345/1110"},
		{"five digit denominator", "2/11100"},
		{"spaces", "66 - 2/1110"},
		{"two slashes", "2/1110/1"},
		{"micr form", "111000025"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := routing.ParseFraction(tt.input)
			s.Require().Error(err)
			s.ErrorIs(err, routing.ErrInvalidFormat)
		})
	}
}

func (s *RoutingNumberSuite) TestParse_SelectsForm() {
	micr, err := routing.Parse("111000025")
	s.Require().NoError(err)
	s.False(micr.HasPrefix())

	frac, err := routing.Parse("66-2/1110")
	s.Require().NoError(err)
	s.Equal("66", frac.Prefix())

	s.True(micr.Equal(frac))

	_, err = routing.Parse("")
	s.ErrorIs(err, routing.ErrInvalidInput)
}

func (s *RoutingNumberSuite) TestRoundTrip() {
	inputs := []string{
		"000000000",
		"011000015",
		"021000021",
		"100000010",
		"111000025",
		"211000006",
		"611000004",
	}

	for _, in := range inputs {
		s.Run(in, func() {
			original := routing.MustParseMICR(in)
			s.Equal(in, original.MICR())

			viaFraction, err := routing.ParseFraction(original.Fraction())
			s.Require().NoError(err)
			s.Equal(original.FedRoutingSymbol(), viaFraction.FedRoutingSymbol())
			s.Equal(original.ABAInstitution(), viaFraction.ABAInstitution())
			s.Equal(original.CheckDigit(), viaFraction.CheckDigit())
			s.True(original.Equal(viaFraction))

			reparsed, err := routing.ParseMICR(viaFraction.MICR())
			s.Require().NoError(err)
			s.Equal(original, reparsed)
		})
	}

	s.Run("prefix survives fraction round trip only", func() {
		withPrefix := routing.MustParseFraction("66-2/1110")
		again := routing.MustParseFraction(withPrefix.Fraction())
		s.Equal(withPrefix, again)

		viaMICR := routing.MustParseMICR(withPrefix.MICR())
		s.False(viaMICR.HasPrefix())
		s.True(viaMICR.Equal(withPrefix))
		s.NotEqual(withPrefix, viaMICR)
	})
}

func (s *RoutingNumberSuite) TestMust() {
	s.Run("panics on invalid MICR", func() {
		s.Panics(func() { routing.MustParseMICR("1234") })
	})

	s.Run("panics on invalid fraction", func() {
		s.Panics(func() { routing.MustParseFraction("x/y") })
	})

	s.Run("returns value when valid", func() {
		s.NotPanics(func() {
			s.Equal("111000025", routing.MustParseFraction("2/1110").MICR())
		})
	})
}

func (s *RoutingNumberSuite) TestZeroValue() {
	var rn routing.RoutingNumber
	s.True(rn.IsZero())
	s.Empty(rn.MICR())
	s.Empty(rn.Fraction())
	s.Empty(rn.CheckDigit())
	s.Equal(-1, rn.CalculateCheckDigit())
	s.Equal(routing.FedReserveType(""), rn.FederalReserveType())
}

func (s *RoutingNumberSuite) TestTextEncoding() {
	type payload struct {
		Routing routing.RoutingNumber `json:"routing"`
	}

	s.Run("encodes MICR form", func() {
		out, err := json.Marshal(payload{Routing: routing.MustParseFraction("66-2/1110")})
		s.Require().NoError(err)
		s.JSONEq(`{"routing":"111000025"}`, string(out))
	})

	s.Run("decodes fraction form", func() {
		var p payload
		s.Require().NoError(json.Unmarshal([]byte(`{"routing":"66-2/1110"}`), &p))
		s.Equal("66-2/1110", p.Routing.Fraction())
	})

	s.Run("rejects invalid values", func() {
		var p payload
		err := json.Unmarshal([]byte(`{"routing":"130000022"}`), &p)
		s.Require().Error(err)
		s.ErrorIs(err, routing.ErrInvalidRoutingSymbol)
	})

	s.Run("empty text is the zero value", func() {
		var rn routing.RoutingNumber
		s.Require().NoError(rn.UnmarshalText(nil))
		s.True(rn.IsZero())
	})
}
