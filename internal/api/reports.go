package api

import (
	"net/http"

	"github.com/stocksync/stocksync/internal/inventory"
	"github.com/stocksync/stocksync/internal/model"
	"github.com/stocksync/stocksync/internal/store"
)

// ReportsHandler serves the read-only views over the current snapshot.
type ReportsHandler struct {
	Store *store.Store
}

type reorderLineView struct {
	Product     productView `json:"product"`
	Quantity    int         `json:"quantity"`
	Cost        float64     `json:"cost"`
	CostDisplay string      `json:"costDisplay"`
}

type reorderReportView struct {
	Empty        bool              `json:"empty"`
	Lines        []reorderLineView `json:"lines"`
	Total        float64           `json:"total"`
	TotalDisplay string            `json:"totalDisplay"`
}

type statsView struct {
	inventory.Stats
	TotalValueDisplay string `json:"totalValueDisplay"`
}

// Snapshot handles GET /api/snapshot.
func (h *ReportsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.Snapshot())
}

// Categories handles GET /api/categories.
func (h *ReportsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string][]string{
		"categories": inventory.Categories(h.Store.Snapshot()),
		"presets":    model.PresetCategories,
	})
}

// LowStock handles GET /api/low-stock.
func (h *ReportsHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, viewsOf(inventory.LowStock(h.Store.Snapshot())))
}

// Reorder handles GET /api/reports/reorder.
func (h *ReportsHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	report := inventory.BuildReorderReport(h.Store.Snapshot())

	view := reorderReportView{
		Empty:        report.Empty(),
		Lines:        make([]reorderLineView, len(report.Lines)),
		Total:        report.Total,
		TotalDisplay: inventory.FormatCurrency(report.Total),
	}
	for i, line := range report.Lines {
		view.Lines[i] = reorderLineView{
			Product:     viewOf(line.Product),
			Quantity:    line.Quantity,
			Cost:        line.Cost,
			CostDisplay: inventory.FormatCurrency(line.Cost),
		}
	}
	jsonResponse(w, http.StatusOK, view)
}

// Stats handles GET /api/stats.
func (h *ReportsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := inventory.Summarize(h.Store.Snapshot())
	jsonResponse(w, http.StatusOK, statsView{
		Stats:             stats,
		TotalValueDisplay: inventory.FormatCurrency(stats.TotalValue),
	})
}
