package db

import (
	"context"
)

const createOrder = `
insert into supplement_order (id, ordered_at) values (?, ?)
`

type CreateOrderParams struct {
	ID        string
	OrderedAt int64
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) error {
	_, err := q.db.ExecContext(ctx, createOrder, arg.ID, arg.OrderedAt)
	return err
}

const getOrder = `
select id, ordered_at from supplement_order where id = ?
`

func (q *Queries) GetOrder(ctx context.Context, id string) (SupplementOrder, error) {
	row := q.db.QueryRowContext(ctx, getOrder, id)
	var i SupplementOrder
	err := row.Scan(&i.ID, &i.OrderedAt)
	return i, err
}

const listOrders = `
select id, ordered_at from supplement_order
order by ordered_at desc, rowid desc
`

func (q *Queries) ListOrders(ctx context.Context) ([]SupplementOrder, error) {
	rows, err := q.db.QueryContext(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SupplementOrder
	for rows.Next() {
		var i SupplementOrder
		if err := rows.Scan(&i.ID, &i.OrderedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteCartItemsOfOrder = `
delete from cart_item where order_id = ?
`

func (q *Queries) DeleteCartItemsOfOrder(ctx context.Context, orderID string) error {
	_, err := q.db.ExecContext(ctx, deleteCartItemsOfOrder, orderID)
	return err
}

const deleteOrder = `
delete from supplement_order where id = ?
`

func (q *Queries) DeleteOrder(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteOrder, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteEverything empties every table, children first.
func (q *Queries) DeleteEverything(ctx context.Context) error {
	for _, table := range []string{
		"cart_item",
		"supplement_order",
		"store_info",
		"supplement_category",
		"supplement",
	} {
		_, err := q.db.ExecContext(ctx, "delete from "+table)
		if err != nil {
			return err
		}
	}
	return nil
}
