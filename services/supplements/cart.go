package supplements

import (
	"context"
	"database/sql"
	"errors"
	"supplements-backend/services/supplements/db"
)

func cartItemFromRow(row db.CartItemRow) CartItem {
	return CartItem{
		ID:             row.ID,
		SupplementID:   row.SupplementID,
		SupplementName: row.SupplementName,
		StoreInfoID:    row.StoreInfoID,
		StoreName:      row.StoreName,
		Price:          pricePtr(row.StorePrice),
		Quantity:       int(row.Quantity),
		OrderID:        row.OrderID.String,
	}
}

func cartItemsFromRows(rows []db.CartItemRow) []CartItem {
	out := make([]CartItem, len(rows))
	for i, row := range rows {
		out[i] = cartItemFromRow(row)
	}
	return out
}

// AddToCart puts qty of the supplement at the given store into the cart, if
// the pair is already in the cart its quantity is increased instead.
func (s Service) AddToCart(ctx context.Context, supplementId, storeInfoId string, qty int) (CartItem, error) {
	if qty < 1 {
		return CartItem{}, invalid("quantity must be at least 1, got %d", qty)
	}

	var item CartItem
	err := s.inTx(ctx, report_cart_add, func(txqry *db.Queries) error {
		_, err := txqry.GetSupplement(ctx, supplementId)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("supplement", supplementId)
		}
		if err != nil {
			return s.persistenceError(report_cart_add, err)
		}
		store, err := txqry.GetStoreInfo(ctx, storeInfoId)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("store info", storeInfoId)
		}
		if err != nil {
			return s.persistenceError(report_cart_add, err)
		}
		if store.SupplementID != supplementId {
			return invalid("store info %q does not belong to supplement %q", storeInfoId, supplementId)
		}

		itemId := ""
		existing, err := txqry.FindCartItem(ctx, db.FindCartItemParams{
			SupplementID: supplementId,
			StoreInfoID:  storeInfoId,
		})
		switch {
		case err == nil:
			itemId = existing.ID
			err = txqry.SetCartItemQuantity(ctx, db.SetCartItemQuantityParams{
				ID:       existing.ID,
				Quantity: existing.Quantity + int64(qty),
			})
		case errors.Is(err, sql.ErrNoRows):
			itemId = s.ids.NewID()
			err = txqry.CreateCartItem(ctx, db.CreateCartItemParams{
				ID:           itemId,
				SupplementID: supplementId,
				StoreInfoID:  storeInfoId,
				Quantity:     int64(qty),
				CreatedAt:    s.now(),
			})
		}
		if err != nil {
			return s.persistenceError(report_cart_add, err)
		}

		row, err := txqry.GetCartItemRow(ctx, itemId)
		if err != nil {
			return s.persistenceError(report_cart_add, err)
		}
		item = cartItemFromRow(row)
		return nil
	})
	if err != nil {
		return CartItem{}, err
	}
	return item, nil
}

// getCartedItem returns the item if it is still in the cart.
func (s Service) getCartedItem(ctx context.Context, txqry *db.Queries, reportId, id string) (db.CartItem, error) {
	item, err := txqry.GetCartItem(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return db.CartItem{}, notFound("cart item", id)
	}
	if err != nil {
		return db.CartItem{}, s.persistenceError(reportId, err)
	}
	if item.OrderID.Valid {
		return db.CartItem{}, ErrItemOrdered
	}
	return item, nil
}

// SetQuantity changes the quantity of an item in the cart, a quantity of
// zero or less removes it.
func (s Service) SetQuantity(ctx context.Context, cartItemId string, qty int) error {
	return s.inTx(ctx, report_cart_set, func(txqry *db.Queries) error {
		_, err := s.getCartedItem(ctx, txqry, report_cart_set, cartItemId)
		if err != nil {
			return err
		}
		if qty <= 0 {
			_, err = txqry.DeleteCartItem(ctx, cartItemId)
		} else {
			err = txqry.SetCartItemQuantity(ctx, db.SetCartItemQuantityParams{
				ID:       cartItemId,
				Quantity: int64(qty),
			})
		}
		if err != nil {
			return s.persistenceError(report_cart_set, err)
		}
		return nil
	})
}

func (s Service) RemoveFromCart(ctx context.Context, cartItemId string) error {
	return s.inTx(ctx, report_cart_remove, func(txqry *db.Queries) error {
		_, err := s.getCartedItem(ctx, txqry, report_cart_remove, cartItemId)
		if err != nil {
			return err
		}
		_, err = txqry.DeleteCartItem(ctx, cartItemId)
		if err != nil {
			return s.persistenceError(report_cart_remove, err)
		}
		return nil
	})
}

// ClearCart removes every item that has not been ordered.
func (s Service) ClearCart(ctx context.Context) error {
	removed, err := s.qry.ClearCart(ctx)
	if err != nil {
		return s.persistenceError(report_cart_clear, err)
	}
	s.tel.ReportDebug("cleared cart", removed)
	return nil
}

func (s Service) ListCart(ctx context.Context) ([]CartItem, error) {
	rows, err := s.qry.ListCartItemRows(ctx, sql.NullString{})
	if err != nil {
		return nil, s.persistenceError(report_cart_list, err)
	}
	return cartItemsFromRows(rows), nil
}

// TotalPrice sums quantity * price over the cart, items with an unknown
// price count as 0.
func (s Service) TotalPrice(ctx context.Context) (float64, error) {
	items, err := s.ListCart(ctx)
	if err != nil {
		return 0, err
	}
	return TotalOf(items), nil
}
