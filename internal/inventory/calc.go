// Package inventory holds the pure stock calculations and the read-only
// views derived from a product snapshot.
package inventory

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/stocksync/stocksync/internal/model"
)

// Status classifies a product's stock. Zero stock is always out, even when
// the threshold is also zero; stock equal to the threshold counts as low.
func Status(p model.Product) model.StockStatus {
	switch {
	case p.CurrentStock == 0:
		return model.StatusOut
	case p.CurrentStock <= p.MinimumThreshold:
		return model.StatusLow
	default:
		return model.StatusHealthy
	}
}

// ReorderQuantity suggests how many units to order: twice the deficit below
// the threshold, but never less than the threshold itself. A product without
// a minimum is never given a reorder quantity.
//
// The value is only meaningful for low or out products.
func ReorderQuantity(p model.Product) int {
	if p.MinimumThreshold <= 0 {
		return 0
	}
	deficit := p.MinimumThreshold - p.CurrentStock
	return max(deficit*2, p.MinimumThreshold)
}

// TotalValue sums stock on hand times unit price.
func TotalValue(products []model.Product) float64 {
	var total float64
	for _, p := range products {
		total += float64(p.CurrentStock) * p.UnitPrice
	}
	return total
}

// FormatCurrency renders amount as US dollars, e.g. "$1,234.50".
// The amount is rounded half away from zero to whole cents, starting from its
// shortest decimal form, so 1.005 renders as "$1.01".
func FormatCurrency(amount float64) string {
	digits := strconv.FormatFloat(amount, 'f', -1, 64)
	exact, ok := new(big.Rat).SetString(digits)
	if !ok {
		return "$" + digits
	}

	sign := ""
	if exact.Sign() < 0 {
		sign = "-"
		exact.Neg(exact)
	}

	// cents = floor(|amount|*100 + 1/2)
	scaled := new(big.Rat).Mul(exact, big.NewRat(100, 1))
	scaled.Add(scaled, big.NewRat(1, 2))
	cents := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	if cents.Sign() == 0 {
		return "$0.00"
	}

	dollars, rem := new(big.Int).QuoRem(cents, big.NewInt(100), new(big.Int))
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.BigComma(dollars), rem.Int64())
}
