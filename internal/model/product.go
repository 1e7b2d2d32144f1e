package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Product is a single stocked article.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	SKU              string    `json:"sku"`
	Category         string    `json:"category"`
	CurrentStock     int       `json:"currentStock"`
	MinimumThreshold int       `json:"minimumThreshold"`
	UnitPrice        float64   `json:"unitPrice"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// ProductInput is the authored part of a product (everything except ID and
// LastUpdated).
type ProductInput struct {
	Name             string  `json:"name"`
	SKU              string  `json:"sku"`
	Category         string  `json:"category"`
	CurrentStock     int     `json:"currentStock"`
	MinimumThreshold int     `json:"minimumThreshold"`
	UnitPrice        float64 `json:"unitPrice"`
}

// Input returns the authored fields of p.
func (p Product) Input() ProductInput {
	return ProductInput{
		Name:             p.Name,
		SKU:              p.SKU,
		Category:         p.Category,
		CurrentStock:     p.CurrentStock,
		MinimumThreshold: p.MinimumThreshold,
		UnitPrice:        p.UnitPrice,
	}
}

// SKUKey is the normalized form used for SKU uniqueness.
func SKUKey(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// Defaults used by the product form for a new product.
const (
	DefaultCategory  = "Other"
	DefaultThreshold = 10
)

// PresetCategories is the fixed list offered when authoring a product.
// Stored products may carry any category string.
var PresetCategories = []string{
	"Electronics",
	"Clothing",
	"Food & Beverage",
	"Hardware",
	"Office Supplies",
	"Raw Materials",
	"Other",
}

// ErrInvalidProduct is wrapped by every ProductInput validation failure.
var ErrInvalidProduct = errors.New("invalid product")

// Validate checks the authoring rules for a product.
func (in ProductInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name required", ErrInvalidProduct)
	case strings.TrimSpace(in.SKU) == "":
		return fmt.Errorf("%w: sku required", ErrInvalidProduct)
	case in.CurrentStock < 0:
		return fmt.Errorf("%w: current stock cannot be negative", ErrInvalidProduct)
	case in.MinimumThreshold < 0:
		return fmt.Errorf("%w: minimum threshold cannot be negative", ErrInvalidProduct)
	case in.UnitPrice < 0 || math.IsNaN(in.UnitPrice) || math.IsInf(in.UnitPrice, 0):
		return fmt.Errorf("%w: unit price must be a non-negative number", ErrInvalidProduct)
	}
	return nil
}
