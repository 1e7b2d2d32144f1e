package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/stocksync/stocksync/internal/inventory"
)

// printReorderReport writes the reorder report as an aligned table.
func printReorderReport(w io.Writer, report inventory.ReorderReport) error {
	if report.Empty() {
		_, err := fmt.Fprintln(w, "Nothing to reorder: all products are above their minimum threshold.")
		return err
	}

	noun := "products need"
	if len(report.Lines) == 1 {
		noun = "product needs"
	}
	if _, err := fmt.Fprintf(w, "Reorder Report: %d %s reordering\n\n", len(report.Lines), noun); err != nil {
		return err
	}

	// Table rows are buffered; write errors surface from Flush.
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PRODUCT\tSKU\tCATEGORY\tON HAND\tMINIMUM\tREORDER\tUNIT PRICE\tCOST\t")
	for _, line := range report.Lines {
		p := line.Product
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\t\n",
			p.Name, p.SKU, p.Category, p.CurrentStock, p.MinimumThreshold,
			line.Quantity, inventory.FormatCurrency(p.UnitPrice), inventory.FormatCurrency(line.Cost))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal reorder cost: %s\n", inventory.FormatCurrency(report.Total))
	return err
}
