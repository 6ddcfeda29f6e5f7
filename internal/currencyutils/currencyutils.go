// Package currencyutils provides the rupee parsing and formatting helpers used
// by the ledger, the importer and the report renderers.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RupeeSign is the symbol used for on-screen amounts.
const RupeeSign = "₹"

var (
	currencyMarkers = regexp.MustCompile(`(?i)(₹|\binr\b|\brs\.?)`)
	indianPrinter   = message.NewPrinter(language.MustParse("en-IN"))
)

// StandardizeAmount strips currency markers, whitespace and thousands
// separators so the result can be handed to decimal.NewFromString.
// Commas are always thousands separators in rupee amounts ("1,23,456.50").
func StandardizeAmount(amountStr string) string {
	s := currencyMarkers.ReplaceAllString(amountStr, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "'", "")
	return strings.Join(strings.Fields(s), "")
}

// ParseAmount parses amount text such as "₹1,250.50", "INR 300" or "42".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': empty value", amountStr)
	}
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatINR renders amount with the rupee sign, Indian digit grouping and two
// decimals, e.g. "₹1,23,456.00". Negative values get a leading minus.
func FormatINR(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	f, _ := amount.Round(2).Float64()
	return sign + RupeeSign + indianPrinter.Sprintf("%.2f", f)
}

// FormatAmount formats amount with two decimals and no grouping, the form
// used in PDF tables ("1250.50").
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// SanitizeForPDF replaces the rupee sign, which the core PDF fonts cannot
// render, with "INR ".
func SanitizeForPDF(text string) string {
	return strings.ReplaceAll(text, RupeeSign, "INR ")
}
