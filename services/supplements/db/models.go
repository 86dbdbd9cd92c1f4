package db

import (
	"database/sql"
)

type Supplement struct {
	ID        string
	Name      string
	Price     float64
	Dosage    string
	Quantity  int64
	Type      string
	CreatedAt int64
}

type SupplementCategory struct {
	SupplementID string
	Category     string
}

type StoreInfo struct {
	ID           string
	SupplementID string
	Name         string
	StoreUrl     string
	InfoUrl      string
	Price        sql.NullFloat64
	CreatedAt    int64
}

type SupplementOrder struct {
	ID        string
	OrderedAt int64
}

type CartItem struct {
	ID           string
	SupplementID string
	StoreInfoID  string
	Quantity     int64
	OrderID      sql.NullString
	CreatedAt    int64
}

type LookupOption struct {
	Kind string
	Name string
}
