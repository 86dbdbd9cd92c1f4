package supplements

import (
	"time"
)

type Supplement struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Price      float64     `json:"price"`
	Dosage     string      `json:"dosage"`
	Quantity   int         `json:"quantity"`
	Type       string      `json:"type"`
	Categories []string    `json:"categories"`
	StoreInfos []StoreInfo `json:"storeInfos"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// CheapestStoreInfo returns the store info with the lowest known price.
func (s Supplement) CheapestStoreInfo() (StoreInfo, bool) {
	var cheapest StoreInfo
	found := false
	for _, info := range s.StoreInfos {
		if info.Price == nil {
			continue
		}
		if !found || *info.Price < *cheapest.Price {
			cheapest = info
			found = true
		}
	}
	return cheapest, found
}

type StoreInfo struct {
	ID           string   `json:"id"`
	SupplementID string   `json:"supplementId"`
	Name         string   `json:"name"`
	StoreURL     string   `json:"storeURL"`
	InfoURL      string   `json:"infoURL"`
	Price        *float64 `json:"price,omitempty"`
}

// CartItem is a quantity of a supplement at a selected store, it is in the
// cart while OrderID is empty.
type CartItem struct {
	ID             string   `json:"id"`
	SupplementID   string   `json:"supplementId"`
	SupplementName string   `json:"supplementName"`
	StoreInfoID    string   `json:"storeInfoId"`
	StoreName      string   `json:"storeName"`
	Price          *float64 `json:"price,omitempty"`
	Quantity       int      `json:"quantity"`
	OrderID        string   `json:"orderId,omitempty"`
}

// Subtotal is quantity * price, an unknown price contributes nothing.
func (c CartItem) Subtotal() float64 {
	if c.Price == nil {
		return 0
	}
	return float64(c.Quantity) * *c.Price
}

// TotalOf sums the subtotals of the items, it is the total shown for the
// cart and for an order.
func TotalOf(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

type Order struct {
	ID        string     `json:"id"`
	OrderedAt time.Time  `json:"dateOrdered"`
	Items     []CartItem `json:"items"`
}

func (o Order) Total() float64 {
	return TotalOf(o.Items)
}

type CreateSupplementRequest struct {
	Name       string                `json:"name"`
	Price      float64               `json:"price"`
	Dosage     string                `json:"dosage"`
	Quantity   int                   `json:"quantity"`
	Type       string                `json:"type"`
	Categories []string              `json:"categories"`
	StoreInfos []AddStoreInfoRequest `json:"storeInfos"`
}

// SupplementPatch only changes the fields that are set, Categories
// replaces the whole set when it is not nil.
type SupplementPatch struct {
	Name       *string   `json:"name"`
	Price      *float64  `json:"price"`
	Dosage     *string   `json:"dosage"`
	Quantity   *int      `json:"quantity"`
	Type       *string   `json:"type"`
	Categories *[]string `json:"categories"`
}

type AddStoreInfoRequest struct {
	Name     string   `json:"name"`
	StoreURL string   `json:"storeURL"`
	InfoURL  string   `json:"infoURL"`
	Price    *float64 `json:"price"`
}

type StoreInfoPatch struct {
	Name     *string  `json:"name"`
	StoreURL *string  `json:"storeURL"`
	InfoURL  *string  `json:"infoURL"`
	Price    *float64 `json:"price"`
	// ClearPrice makes the price unknown, it takes precedence over Price.
	ClearPrice bool `json:"clearPrice"`
}
