package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksync/stocksync/internal/model"
)

func sample() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Wireless Mouse", SKU: "WM-001", Category: "Electronics", CurrentStock: 5, MinimumThreshold: 10, UnitPrice: 9.99},
		{ID: "2", Name: "Desk Lamp", SKU: "DL-100", Category: "Office Supplies", CurrentStock: 40, MinimumThreshold: 5, UnitPrice: 24.50},
		{ID: "3", Name: "USB Cable", SKU: "usb-c-2", Category: "Electronics", CurrentStock: 0, MinimumThreshold: 20, UnitPrice: 3.25},
		{ID: "4", Name: "Copy Paper", SKU: "CP-500", Category: "Office Supplies", CurrentStock: 12, MinimumThreshold: 12, UnitPrice: 6},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	products := sample()

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"no constraints", "", AllCategories, []string{"1", "2", "3", "4"}},
		{"empty category means all", "", "", []string{"1", "2", "3", "4"}},
		{"name match ignores case", "mouse", AllCategories, []string{"1"}},
		{"sku match ignores case", "USB-C", AllCategories, []string{"3"}},
		{"substring in name or sku", "p", AllCategories, []string{"2", "4"}},
		{"category only", "", "Electronics", []string{"1", "3"}},
		{"query and category", "c", "Office Supplies", []string{"4"}},
		{"unknown category", "", "Garden", []string{}},
		{"whitespace query is not trimmed", "   ", AllCategories, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(products, tt.query, tt.category)))
		})
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	products := sample()
	before := sample()
	Filter(products, "mouse", "Electronics")
	LowStock(products)
	BuildReorderReport(products)
	assert.Equal(t, before, products)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{AllCategories}, Categories(nil))
	assert.Equal(t, []string{AllCategories, "Electronics", "Office Supplies"}, Categories(sample()))
}

func TestLowStock(t *testing.T) {
	assert.Equal(t, []string{"1", "3", "4"}, ids(LowStock(sample())))
	assert.Empty(t, LowStock(nil))
}

func TestBuildReorderReport(t *testing.T) {
	report := BuildReorderReport(sample())
	require.False(t, report.Empty())
	require.Len(t, report.Lines, 3)

	assert.Equal(t, 10, report.Lines[0].Quantity)
	assert.InDelta(t, 99.90, report.Lines[0].Cost, 1e-9)
	assert.Equal(t, 40, report.Lines[1].Quantity)
	assert.InDelta(t, 130.0, report.Lines[1].Cost, 1e-9)
	assert.Equal(t, 12, report.Lines[2].Quantity)
	assert.InDelta(t, 72.0, report.Lines[2].Cost, 1e-9)
	assert.InDelta(t, 301.90, report.Total, 1e-9)
}

func TestBuildReorderReportNothingToReorder(t *testing.T) {
	healthy := []model.Product{{ID: "1", CurrentStock: 50, MinimumThreshold: 5, UnitPrice: 1}}
	report := BuildReorderReport(healthy)
	assert.True(t, report.Empty())
	assert.Zero(t, report.Total)
}

func TestSummarize(t *testing.T) {
	stats := Summarize(sample())
	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 3, stats.LowStockCount)
	assert.InDelta(t, 5*9.99+40*24.50+12*6, stats.TotalValue, 1e-9)

	assert.Equal(t, Stats{}, Summarize(nil))
}
