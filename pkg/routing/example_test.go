package routing_test

import (
	"errors"
	"fmt"

	"rtn/pkg/routing"
)

func ExampleParseMICR() {
	rn, err := routing.ParseMICR("111000025")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rn.FedRoutingSymbol(), rn.ABAInstitution(), rn.CheckDigit())
	fmt.Println(rn.Fraction())
	fmt.Println(rn.FederalReserveType())
	// Output:
	// 1110 0002 5
	// 2/1110
	// primary
}

func ExampleParseFraction() {
	rn, err := routing.ParseFraction("66-2/1110")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rn.MICR())
	fmt.Println(rn.Fraction())
	// Output:
	// 111000025
	// 66-2/1110
}

func ExampleParseMICR_invalidSymbol() {
	_, err := routing.ParseMICR("130000022")
	fmt.Println(err)
	fmt.Println(errors.Is(err, routing.ErrInvalidRoutingSymbol))
	// Output:
	// Invalid Federal Routing Symbol
	// true
}
