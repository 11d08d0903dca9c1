// Package routing models U.S. bank routing transit numbers.
//
// A RoutingNumber is a validated value: it can only be obtained from
// ParseMICR, ParseFraction or Parse, and it never changes afterwards.
//
// # Representations
//
// MICR form is the nine digits printed along the bottom of a check:
//
//	XXXXYYYYC
//	│   │   └─ check digit
//	│   └───── ABA institution identifier
//	└───────── Federal Reserve routing symbol
//
// Fraction form is the legacy notation printed near the check number,
// with an optional one or two digit prefix:
//
//	[PP-]YYYY/XXXX
//
// Leading zeros are dropped in fraction form and restored when parsing.
// The check digit is not part of fraction form; it is computed.
//
// # Federal Reserve ranges
//
// Only routing symbols whose first two digits fall in 00, 01-12, 21-32 or
// 61-72 are accepted. Internal-use (50-59), traveler's check (80) and the
// legacy 81-92 ranges are rejected with ErrInvalidRoutingSymbol.
//
// Domain purity: nothing in this package performs I/O or logs.
package routing
