package api

import (
	"database/sql"
	"net/http"

	"github.com/stocksync/stocksync/internal/auth"
	"github.com/stocksync/stocksync/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(inv *store.Store, db *sql.DB, gate *auth.Gate, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, Gate: gate, JWTSecret: jwtSecret}
	productsHandler := &ProductsHandler{Store: inv, DB: db}
	reportsHandler := &ReportsHandler{Store: inv}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Products.
	mux.Handle("GET /api/products", authMW(http.HandlerFunc(productsHandler.List)))
	mux.Handle("POST /api/products", authMW(http.HandlerFunc(productsHandler.Create)))
	mux.Handle("GET /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Get)))
	mux.Handle("PUT /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Update)))
	mux.Handle("DELETE /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Delete)))
	mux.Handle("POST /api/products/{id}/adjust", authMW(http.HandlerFunc(productsHandler.Adjust)))
	mux.Handle("PUT /api/products/{id}/image", authMW(http.HandlerFunc(productsHandler.UploadImage)))
	mux.Handle("GET /api/products/{id}/image", authMW(http.HandlerFunc(productsHandler.GetImage)))

	// Derived views.
	mux.Handle("GET /api/snapshot", authMW(http.HandlerFunc(reportsHandler.Snapshot)))
	mux.Handle("GET /api/categories", authMW(http.HandlerFunc(reportsHandler.Categories)))
	mux.Handle("GET /api/low-stock", authMW(http.HandlerFunc(reportsHandler.LowStock)))
	mux.Handle("GET /api/reports/reorder", authMW(http.HandlerFunc(reportsHandler.Reorder)))
	mux.Handle("GET /api/stats", authMW(http.HandlerFunc(reportsHandler.Stats)))

	return mux
}
