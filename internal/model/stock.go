package model

import (
	"fmt"
	"strings"
)

// Direction is the sense of a manual stock adjustment.
type Direction int

// Adjustment directions.
const (
	DirectionAdd Direction = iota + 1
	DirectionRemove
)

func (d Direction) String() string {
	switch d {
	case DirectionAdd:
		return "add"
	case DirectionRemove:
		return "remove"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool {
	return d == DirectionAdd || d == DirectionRemove
}

// ParseDirection parses "add" or "remove" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add":
		return DirectionAdd, nil
	case "remove":
		return DirectionRemove, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// StockStatus is the derived health of a product's stock level. It is never
// stored.
type StockStatus int

// Stock statuses.
const (
	StatusHealthy StockStatus = iota + 1
	StatusLow
	StatusOut
)

func (s StockStatus) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusLow:
		return "low"
	case StatusOut:
		return "out"
	default:
		return fmt.Sprintf("StockStatus(%d)", int(s))
	}
}

// NeedsReorder reports whether the status is low or out.
func (s StockStatus) NeedsReorder() bool {
	return s == StatusLow || s == StatusOut
}

// MarshalText implements encoding.TextMarshaler.
func (s StockStatus) MarshalText() ([]byte, error) {
	switch s {
	case StatusHealthy, StatusLow, StatusOut:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("invalid stock status %d", int(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StockStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "healthy":
		*s = StatusHealthy
	case "low":
		*s = StatusLow
	case "out":
		*s = StatusOut
	default:
		return fmt.Errorf("unknown stock status %q", text)
	}
	return nil
}
