package supplements

import (
	"context"
	"database/sql"
	"errors"
	"supplements-backend/services/supplements/db"

	"go.opentelemetry.io/otel/attribute"
)

func (s Service) loadOrder(ctx context.Context, qry *db.Queries, id string) (Order, error) {
	row, err := qry.GetOrder(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, notFound("order", id)
	}
	if err != nil {
		return Order{}, err
	}
	items, err := qry.ListCartItemRows(ctx, sql.NullString{String: id, Valid: true})
	if err != nil {
		return Order{}, err
	}
	return Order{
		ID:        row.ID,
		OrderedAt: fromUnixMilli(row.OrderedAt),
		Items:     cartItemsFromRows(items),
	}, nil
}

func dedupe(ids []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Checkout moves cart items into a new order. Without ids the whole cart
// is ordered, otherwise only the given items are, all of which must be in
// the cart.
func (s Service) Checkout(ctx context.Context, cartItemIds ...string) (Order, error) {
	ctx, span := tracer.Start(ctx, "Checkout")
	defer span.End()

	cartItemIds = dedupe(cartItemIds)
	orderId := s.ids.NewID()

	var order Order
	err := s.inTx(ctx, report_cart_checkout, func(txqry *db.Queries) error {
		if len(cartItemIds) == 0 {
			count, err := txqry.CountCart(ctx)
			if err != nil {
				return s.persistenceError(report_cart_checkout, err)
			}
			if count == 0 {
				return ErrEmptyCart
			}
		}
		for _, id := range cartItemIds {
			item, err := txqry.GetCartItem(ctx, id)
			if errors.Is(err, sql.ErrNoRows) || (err == nil && item.OrderID.Valid) {
				return notFound("cart item", id)
			}
			if err != nil {
				return s.persistenceError(report_cart_checkout, err)
			}
		}

		err := txqry.CreateOrder(ctx, db.CreateOrderParams{
			ID:        orderId,
			OrderedAt: s.now(),
		})
		if err != nil {
			return s.persistenceError(report_cart_checkout, err)
		}

		if len(cartItemIds) == 0 {
			_, err = txqry.AssignCartToOrder(ctx, orderId)
			if err != nil {
				return s.persistenceError(report_cart_checkout, err)
			}
		}
		for _, id := range cartItemIds {
			_, err = txqry.AssignCartItemToOrder(ctx, db.AssignCartItemToOrderParams{
				OrderID: orderId,
				ID:      id,
			})
			if err != nil {
				return s.persistenceError(report_cart_checkout, err)
			}
		}

		order, err = s.loadOrder(ctx, txqry, orderId)
		if err != nil {
			return s.wrapQueryError(report_cart_checkout, err)
		}
		return nil
	})
	if err != nil {
		return Order{}, err
	}

	span.SetAttributes(
		attribute.String("order_id", order.ID),
		attribute.Int("items", len(order.Items)),
	)
	return order, nil
}

// ListOrders returns every order, newest first.
func (s Service) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := s.qry.ListOrders(ctx)
	if err != nil {
		return nil, s.persistenceError(report_orders_list, err)
	}
	items, err := s.qry.ListOrderedCartItemRows(ctx)
	if err != nil {
		return nil, s.persistenceError(report_orders_list, err)
	}

	itemsOf := map[string][]CartItem{}
	for _, row := range items {
		itemsOf[row.OrderID.String] = append(itemsOf[row.OrderID.String], cartItemFromRow(row))
	}

	out := make([]Order, len(rows))
	for i, row := range rows {
		out[i] = Order{
			ID:        row.ID,
			OrderedAt: fromUnixMilli(row.OrderedAt),
			Items:     itemsOf[row.ID],
		}
		if out[i].Items == nil {
			out[i].Items = []CartItem{}
		}
	}
	return out, nil
}

func (s Service) GetOrder(ctx context.Context, id string) (Order, error) {
	order, err := s.loadOrder(ctx, s.qry, id)
	if err != nil {
		return Order{}, s.wrapQueryError(report_orders_get, err)
	}
	return order, nil
}

// DeleteOrder removes the order along with the items that were ordered.
func (s Service) DeleteOrder(ctx context.Context, id string) error {
	return s.inTx(ctx, report_orders_delete, func(txqry *db.Queries) error {
		_, err := txqry.GetOrder(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("order", id)
		}
		if err != nil {
			return s.persistenceError(report_orders_delete, err)
		}
		err = txqry.DeleteCartItemsOfOrder(ctx, id)
		if err != nil {
			return s.persistenceError(report_orders_delete, err)
		}
		_, err = txqry.DeleteOrder(ctx, id)
		if err != nil {
			return s.persistenceError(report_orders_delete, err)
		}
		return nil
	})
}
