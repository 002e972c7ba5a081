package domain

import (
	"fmt"
	"strings"
)

// Currency is a display currency. Only the symbol reaches formatted output;
// no exchange conversion is ever applied.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Currencies is the selectable catalogue, default first.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "BDT", Symbol: "৳", Name: "Bangladeshi Taka"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee"},
	{Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
}

// DefaultCurrency returns the catalogue default (USD)
func DefaultCurrency() Currency {
	return Currencies[0]
}

// LookupCurrency finds a currency by ISO code, case-insensitively.
// An empty code resolves to the default currency.
func LookupCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency(), nil
	}
	for _, c := range Currencies {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("unknown currency %q", code)
}
