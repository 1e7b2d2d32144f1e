package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksync/stocksync/internal/inventory"
	"github.com/stocksync/stocksync/internal/model"
)

func TestPrintReorderReport(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Mouse", SKU: "WM-001", Category: "Electronics", CurrentStock: 5, MinimumThreshold: 10, UnitPrice: 9.99},
		{ID: "2", Name: "Desk Lamp", SKU: "DL-100", Category: "Office Supplies", CurrentStock: 40, MinimumThreshold: 5, UnitPrice: 24.5},
	}

	var buf bytes.Buffer
	require.NoError(t, printReorderReport(&buf, inventory.BuildReorderReport(products)))
	out := buf.String()

	assert.Contains(t, out, "1 product needs reordering")
	assert.Contains(t, out, "WM-001")
	assert.NotContains(t, out, "DL-100")
	assert.Contains(t, out, "$99.90")
	assert.True(t, strings.HasSuffix(out, "Total reorder cost: $99.90\n"))
}

func TestPrintReorderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReorderReport(&buf, inventory.BuildReorderReport(nil)))
	assert.Contains(t, buf.String(), "Nothing to reorder")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPrintReorderReportWriteError(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Mouse", SKU: "WM-001", CurrentStock: 5, MinimumThreshold: 10, UnitPrice: 9.99},
	}
	err := printReorderReport(failingWriter{}, inventory.BuildReorderReport(products))
	assert.EqualError(t, err, "broken pipe")
}
