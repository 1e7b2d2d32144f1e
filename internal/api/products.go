package api

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/stocksync/stocksync/internal/imaging"
	"github.com/stocksync/stocksync/internal/inventory"
	"github.com/stocksync/stocksync/internal/model"
	"github.com/stocksync/stocksync/internal/store"
)

// ProductsHandler handles product CRUD, stock adjustment, and photo endpoints.
type ProductsHandler struct {
	Store *store.Store
	DB    *sql.DB
}

// productView is a product with its status derived at read time.
type productView struct {
	model.Product
	Status model.StockStatus `json:"status"`
}

func viewOf(p model.Product) productView {
	return productView{Product: p, Status: inventory.Status(p)}
}

func viewsOf(products []model.Product) []productView {
	out := make([]productView, len(products))
	for i, p := range products {
		out[i] = viewOf(p)
	}
	return out
}

// productRequest is the create/edit body. A missing minimumThreshold takes
// the form default on create and is required on edit.
type productRequest struct {
	Name             string  `json:"name"`
	SKU              string  `json:"sku"`
	Category         string  `json:"category"`
	CurrentStock     int     `json:"currentStock"`
	MinimumThreshold *int    `json:"minimumThreshold"`
	UnitPrice        float64 `json:"unitPrice"`
}

func (req productRequest) input(defaultThreshold *int) (model.ProductInput, error) {
	threshold := req.MinimumThreshold
	if threshold == nil {
		threshold = defaultThreshold
	}
	if threshold == nil {
		return model.ProductInput{}, errors.New("minimumThreshold required")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = model.DefaultCategory
	}

	in := model.ProductInput{
		Name:             strings.TrimSpace(req.Name),
		SKU:              strings.TrimSpace(req.SKU),
		Category:         category,
		CurrentStock:     req.CurrentStock,
		MinimumThreshold: *threshold,
		UnitPrice:        req.UnitPrice,
	}
	if err := in.Validate(); err != nil {
		return model.ProductInput{}, err
	}
	return in, nil
}

type adjustRequest struct {
	Direction string `json:"direction"`
	Quantity  int    `json:"quantity"`
}

// List handles GET /api/products?q=&category=.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products := inventory.Filter(h.Store.Snapshot(), q.Get("q"), q.Get("category"))
	jsonResponse(w, http.StatusOK, viewsOf(products))
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	defaultThreshold := model.DefaultThreshold
	in, err := req.input(&defaultThreshold)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Store.Add(r.Context(), in)
	if err != nil {
		storeError(w, err, "add product")
		return
	}

	slog.Info("product added", "id", p.ID, "sku", p.SKU, "name", p.Name)
	jsonResponse(w, http.StatusCreated, viewOf(p))
}

// Get handles GET /api/products/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Store.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	jsonResponse(w, http.StatusOK, viewOf(p))
}

// Update handles PUT /api/products/{id}.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in, err := req.input(nil)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Store.Edit(r.Context(), r.PathValue("id"), in)
	if err != nil {
		storeError(w, err, "update product")
		return
	}

	slog.Info("product updated", "id", p.ID, "sku", p.SKU, "name", p.Name)
	jsonResponse(w, http.StatusOK, viewOf(p))
}

// Delete handles DELETE /api/products/{id}. Unknown IDs are not an error.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, existed := h.Store.Get(id)

	if err := h.Store.Delete(r.Context(), id); err != nil {
		storeError(w, err, "delete product")
		return
	}

	if existed {
		if err := store.DeleteProductImage(r.Context(), h.DB, id); err != nil {
			slog.Error("failed to delete product image", "id", id, "error", err)
		}
		slog.Info("product deleted", "id", id, "sku", p.SKU, "name", p.Name)
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// Adjust handles POST /api/products/{id}/adjust.
func (h *ProductsHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dir, err := model.ParseDirection(req.Direction)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "direction must be add or remove")
		return
	}
	if req.Quantity <= 0 {
		jsonError(w, http.StatusBadRequest, "quantity must be a positive integer")
		return
	}

	p, err := h.Store.AdjustStock(r.Context(), r.PathValue("id"), dir, req.Quantity)
	if err != nil {
		storeError(w, err, "adjust stock")
		return
	}

	slog.Info("stock adjusted", "id", p.ID, "sku", p.SKU,
		"direction", dir.String(), "quantity", req.Quantity, "stock", p.CurrentStock)
	jsonResponse(w, http.StatusOK, viewOf(p))
}

// UploadImage handles PUT /api/products/{id}/image.
func (h *ProductsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.Store.Get(id); !ok {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxBytes+(64<<10))
	if err := r.ParseMultipartForm(imaging.MaxBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "failed to read image")
		return
	}

	photo, err := imaging.ProcessPhoto(data)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.saveImage(r.Context(), id, photo); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "product not found")
			return
		}
		slog.Error("failed to save product image", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "image uploaded",
		"width":   photo.Width,
		"height":  photo.Height,
	})
}

// saveImage stores the photo, then removes it again if the product was
// deleted while the upload was in flight.
func (h *ProductsHandler) saveImage(ctx context.Context, id string, photo *imaging.Photo) error {
	if err := store.SetProductImage(ctx, h.DB, id, photo.Data, photo.MIME); err != nil {
		return err
	}
	if _, ok := h.Store.Get(id); ok {
		return nil
	}
	if err := store.DeleteProductImage(ctx, h.DB, id); err != nil {
		return err
	}
	return store.ErrNotFound
}

// GetImage handles GET /api/products/{id}/image.
func (h *ProductsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, mime, err := store.GetProductImage(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get product image", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
