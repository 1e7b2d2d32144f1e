package inventory

import (
	"strings"

	"github.com/stocksync/stocksync/internal/model"
)

// AllCategories is the category selector that matches every product.
const AllCategories = "all"

// Filter returns the products whose name or SKU contains query
// (case-insensitive) and whose category equals category. The query is used
// as typed, so surrounding spaces must match too. An empty query matches
// everything; AllCategories or an empty category disables the
// category constraint. Snapshot order is preserved.
func Filter(products []model.Product, query, category string) []model.Product {
	q := strings.ToLower(query)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) {
			continue
		}
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories lists AllCategories followed by each distinct product category
// in order of first appearance.
func Categories(products []model.Product) []string {
	seen := make(map[string]bool, len(products))
	out := []string{AllCategories}
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// LowStock returns the products whose status is low or out.
func LowStock(products []model.Product) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range products {
		if Status(p).NeedsReorder() {
			out = append(out, p)
		}
	}
	return out
}

// ReorderLine is one product on the reorder report.
type ReorderLine struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
	Cost     float64       `json:"cost"`
}

// ReorderReport lists what to order for the low-stock view and what it costs.
type ReorderReport struct {
	Lines []ReorderLine `json:"lines"`
	Total float64       `json:"total"`
}

// Empty reports whether there is nothing to reorder.
func (r ReorderReport) Empty() bool {
	return len(r.Lines) == 0
}

// BuildReorderReport computes the reorder report for a snapshot.
func BuildReorderReport(products []model.Product) ReorderReport {
	low := LowStock(products)
	report := ReorderReport{Lines: make([]ReorderLine, 0, len(low))}
	for _, p := range low {
		qty := ReorderQuantity(p)
		cost := float64(qty) * p.UnitPrice
		report.Lines = append(report.Lines, ReorderLine{Product: p, Quantity: qty, Cost: cost})
		report.Total += cost
	}
	return report
}

// Stats summarizes a snapshot.
type Stats struct {
	Count         int     `json:"count"`
	LowStockCount int     `json:"lowStockCount"`
	TotalValue    float64 `json:"totalValue"`
}

// Summarize computes Stats over the whole snapshot.
func Summarize(products []model.Product) Stats {
	s := Stats{Count: len(products), TotalValue: TotalValue(products)}
	for _, p := range products {
		if Status(p).NeedsReorder() {
			s.LowStockCount++
		}
	}
	return s
}
