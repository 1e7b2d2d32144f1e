package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/stocksync/stocksync/internal/model"
)

// DefaultSnapshotKey is the settings key holding the product snapshot.
const DefaultSnapshotKey = "inventory-products"

// snapshotVersion is the current shape of the persisted record. Version 0 is
// a bare JSON array of products.
const snapshotVersion = 1

type snapshotRecord struct {
	Version  int             `json:"version"`
	Products []model.Product `json:"products"`
}

// SQLitePersister keeps the product snapshot as one JSON document in the
// settings table.
type SQLitePersister struct {
	DB  *sql.DB
	Key string
}

// NewSQLitePersister returns a persister for key, or DefaultSnapshotKey if
// key is empty.
func NewSQLitePersister(db *sql.DB, key string) *SQLitePersister {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SQLitePersister{DB: db, Key: key}
}

// Load reads the snapshot. A missing record is an empty inventory.
func (p *SQLitePersister) Load(ctx context.Context) ([]model.Product, error) {
	value, ok, err := GetSetting(ctx, p.DB, p.Key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Product{}, nil
	}
	return DecodeSnapshot([]byte(value))
}

// Save overwrites the snapshot.
func (p *SQLitePersister) Save(ctx context.Context, products []model.Product) error {
	data, err := EncodeSnapshot(products)
	if err != nil {
		return err
	}
	return PutSetting(ctx, p.DB, p.Key, string(data))
}

// EncodeSnapshot marshals products into the current record version.
func EncodeSnapshot(products []model.Product) ([]byte, error) {
	if products == nil {
		products = []model.Product{}
	}
	data, err := json.Marshal(snapshotRecord{Version: snapshotVersion, Products: products})
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot unmarshals any known record version.
func DecodeSnapshot(data []byte) ([]model.Product, error) {
	data = bytes.TrimSpace(data)

	var products []model.Product
	if bytes.HasPrefix(data, []byte("[")) {
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("decoding unversioned snapshot: %w", err)
		}
	} else {
		var rec snapshotRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding snapshot: %w", err)
		}
		if rec.Version < 1 || rec.Version > snapshotVersion {
			return nil, fmt.Errorf("decoding snapshot: unsupported version %d", rec.Version)
		}
		products = rec.Products
	}

	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}
