package supplements

import (
	"context"
	"database/sql"
	"strings"
	"supplements-backend/lib/textutil"
	"supplements-backend/services/supplements/db"
	"time"
)

// Snapshot is the whole state of the service in the legacy export layout.
type Snapshot struct {
	Supplements []Supplement    `json:"supplements"`
	Cart        []SnapshotItem  `json:"cart"`
	OrderList   []SnapshotOrder `json:"orderList"`
}

type SnapshotItem struct {
	ID           string `json:"id"`
	SupplementID string `json:"supplementId"`
	StoreInfoID  string `json:"selectedStoreInfoId"`
	Quantity     int    `json:"quantity"`
}

type SnapshotOrder struct {
	ID          string         `json:"id"`
	DateOrdered time.Time      `json:"dateOrdered"`
	Items       []SnapshotItem `json:"items"`
}

func snapshotItems(items []CartItem) []SnapshotItem {
	out := make([]SnapshotItem, len(items))
	for i, item := range items {
		out[i] = SnapshotItem{
			ID:           item.ID,
			SupplementID: item.SupplementID,
			StoreInfoID:  item.StoreInfoID,
			Quantity:     item.Quantity,
		}
	}
	return out
}

func (s Service) ExportSnapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "ExportSnapshot")
	defer span.End()

	catalog, err := s.ListSupplements(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	cart, err := s.ListCart(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{
		Supplements: catalog,
		Cart:        snapshotItems(cart),
		OrderList:   make([]SnapshotOrder, len(orders)),
	}
	for i, order := range orders {
		snapshot.OrderList[i] = SnapshotOrder{
			ID:          order.ID,
			DateOrdered: order.OrderedAt,
			Items:       snapshotItems(order.Items),
		}
	}
	s.tel.ReportDebug("exported snapshot", len(catalog), len(cart), len(orders))
	return snapshot, nil
}

// validateSnapshot checks a snapshot can be imported without breaking any
// reference, it fills in missing ids.
func (s Service) validateSnapshot(snapshot *Snapshot) error {
	snapshot.Supplements = append([]Supplement(nil), snapshot.Supplements...)
	for i := range snapshot.Supplements {
		snapshot.Supplements[i].StoreInfos = append([]StoreInfo(nil), snapshot.Supplements[i].StoreInfos...)
	}
	snapshot.Cart = append([]SnapshotItem(nil), snapshot.Cart...)
	snapshot.OrderList = append([]SnapshotOrder(nil), snapshot.OrderList...)
	for i := range snapshot.OrderList {
		snapshot.OrderList[i].Items = append([]SnapshotItem(nil), snapshot.OrderList[i].Items...)
	}

	supplementIds := map[string]struct{}{}
	storeOwner := map[string]string{}
	itemIds := map[string]struct{}{}

	for i := range snapshot.Supplements {
		supplement := &snapshot.Supplements[i]
		if supplement.ID == "" {
			supplement.ID = s.ids.NewID()
		}
		if _, ok := supplementIds[supplement.ID]; ok {
			return invalid("duplicate supplement id %q", supplement.ID)
		}
		supplementIds[supplement.ID] = struct{}{}

		supplement.Name = strings.TrimSpace(supplement.Name)
		if supplement.Name == "" {
			return invalid("supplement %q has no name", supplement.ID)
		}
		if supplement.Quantity < 0 {
			return invalid("supplement %q has a negative quantity", supplement.ID)
		}
		price, err := supplementPrice(supplement.Price)
		if err != nil {
			return err
		}
		supplement.Price = price
		supplement.Dosage = strings.TrimSpace(supplement.Dosage)
		supplement.Type = strings.TrimSpace(supplement.Type)
		supplement.Categories = textutil.NormalizeSet(supplement.Categories)

		for j := range supplement.StoreInfos {
			store := &supplement.StoreInfos[j]
			if store.ID == "" {
				store.ID = s.ids.NewID()
			}
			if _, ok := storeOwner[store.ID]; ok {
				return invalid("duplicate store info id %q", store.ID)
			}
			storeOwner[store.ID] = supplement.ID
			store.SupplementID = supplement.ID

			req, err := normalizeStoreInfo(AddStoreInfoRequest{
				Name:     store.Name,
				StoreURL: store.StoreURL,
				InfoURL:  store.InfoURL,
				Price:    store.Price,
			})
			if err != nil {
				return err
			}
			store.Name = req.Name
			store.StoreURL = req.StoreURL
			store.InfoURL = req.InfoURL
		}
	}

	checkItems := func(items []SnapshotItem) error {
		pairs := map[[2]string]struct{}{}
		for i := range items {
			item := &items[i]
			if item.ID == "" {
				item.ID = s.ids.NewID()
			}
			if _, ok := itemIds[item.ID]; ok {
				return invalid("duplicate cart item id %q", item.ID)
			}
			itemIds[item.ID] = struct{}{}

			if item.Quantity < 1 {
				return invalid("cart item %q has quantity %d", item.ID, item.Quantity)
			}
			if _, ok := supplementIds[item.SupplementID]; !ok {
				return invalid("cart item %q references unknown supplement %q", item.ID, item.SupplementID)
			}
			if storeOwner[item.StoreInfoID] != item.SupplementID {
				return invalid("cart item %q references store info %q which does not belong to its supplement", item.ID, item.StoreInfoID)
			}
			pair := [2]string{item.SupplementID, item.StoreInfoID}
			if _, ok := pairs[pair]; ok {
				return invalid("cart item %q repeats a supplement and store pair", item.ID)
			}
			pairs[pair] = struct{}{}
		}
		return nil
	}

	if err := checkItems(snapshot.Cart); err != nil {
		return err
	}
	orderIds := map[string]struct{}{}
	for i := range snapshot.OrderList {
		order := &snapshot.OrderList[i]
		if order.ID == "" {
			order.ID = s.ids.NewID()
		}
		if _, ok := orderIds[order.ID]; ok {
			return invalid("duplicate order id %q", order.ID)
		}
		orderIds[order.ID] = struct{}{}
		if err := checkItems(order.Items); err != nil {
			return err
		}
	}
	return nil
}

func (s Service) insertSnapshotItems(ctx context.Context, txqry *db.Queries, orderId sql.NullString, items []SnapshotItem) error {
	for _, item := range items {
		err := txqry.CreateCartItem(ctx, db.CreateCartItemParams{
			ID:           item.ID,
			SupplementID: item.SupplementID,
			StoreInfoID:  item.StoreInfoID,
			Quantity:     int64(item.Quantity),
			OrderID:      orderId,
			CreatedAt:    s.now(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ImportSnapshot replaces everything with the contents of the snapshot,
// nothing changes if the snapshot is invalid.
func (s Service) ImportSnapshot(ctx context.Context, snapshot Snapshot) error {
	ctx, span := tracer.Start(ctx, "ImportSnapshot")
	defer span.End()

	err := s.validateSnapshot(&snapshot)
	if err != nil {
		return err
	}

	return s.inTx(ctx, report_snapshot_import, func(txqry *db.Queries) error {
		err := txqry.DeleteEverything(ctx)
		if err != nil {
			return s.persistenceError(report_snapshot_import, err)
		}

		for _, supplement := range snapshot.Supplements {
			createdAt := supplement.CreatedAt.UnixMilli()
			if supplement.CreatedAt.IsZero() {
				createdAt = s.now()
			}
			err = txqry.CreateSupplement(ctx, db.CreateSupplementParams{
				ID:        supplement.ID,
				Name:      supplement.Name,
				Price:     supplement.Price,
				Dosage:    supplement.Dosage,
				Quantity:  int64(supplement.Quantity),
				Type:      supplement.Type,
				CreatedAt: createdAt,
			})
			if err != nil {
				return s.persistenceError(report_snapshot_import, err)
			}
			for _, category := range supplement.Categories {
				err = txqry.AddSupplementCategory(ctx, db.AddSupplementCategoryParams{
					SupplementID: supplement.ID,
					Category:     category,
				})
				if err != nil {
					return s.persistenceError(report_snapshot_import, err)
				}
			}
			for _, store := range supplement.StoreInfos {
				err = txqry.CreateStoreInfo(ctx, db.CreateStoreInfoParams{
					ID:           store.ID,
					SupplementID: supplement.ID,
					Name:         store.Name,
					StoreUrl:     store.StoreURL,
					InfoUrl:      store.InfoURL,
					Price:        nullPrice(store.Price),
					CreatedAt:    createdAt,
				})
				if err != nil {
					return s.persistenceError(report_snapshot_import, err)
				}
			}
		}

		err = s.insertSnapshotItems(ctx, txqry, sql.NullString{}, snapshot.Cart)
		if err != nil {
			return s.persistenceError(report_snapshot_import, err)
		}
		// orders are exported newest first
		for i := len(snapshot.OrderList) - 1; i >= 0; i-- {
			order := snapshot.OrderList[i]
			orderedAt := order.DateOrdered.UnixMilli()
			if order.DateOrdered.IsZero() {
				orderedAt = s.now()
			}
			err = txqry.CreateOrder(ctx, db.CreateOrderParams{
				ID:        order.ID,
				OrderedAt: orderedAt,
			})
			if err != nil {
				return s.persistenceError(report_snapshot_import, err)
			}
			err = s.insertSnapshotItems(ctx, txqry, sql.NullString{String: order.ID, Valid: true}, order.Items)
			if err != nil {
				return s.persistenceError(report_snapshot_import, err)
			}
		}
		return nil
	})
}
