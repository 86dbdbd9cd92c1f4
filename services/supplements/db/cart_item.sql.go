package db

import (
	"context"
	"database/sql"
)

const cartItemColumns = `id, supplement_id, store_info_id, quantity, order_id, created_at`

func scanCartItem(scanner interface{ Scan(...any) error }) (CartItem, error) {
	var i CartItem
	err := scanner.Scan(
		&i.ID,
		&i.SupplementID,
		&i.StoreInfoID,
		&i.Quantity,
		&i.OrderID,
		&i.CreatedAt,
	)
	return i, err
}

const createCartItem = `
insert into cart_item (id, supplement_id, store_info_id, quantity, order_id, created_at)
values (?, ?, ?, ?, ?, ?)
`

type CreateCartItemParams struct {
	ID           string
	SupplementID string
	StoreInfoID  string
	Quantity     int64
	OrderID      sql.NullString
	CreatedAt    int64
}

func (q *Queries) CreateCartItem(ctx context.Context, arg CreateCartItemParams) error {
	_, err := q.db.ExecContext(ctx, createCartItem,
		arg.ID,
		arg.SupplementID,
		arg.StoreInfoID,
		arg.Quantity,
		arg.OrderID,
		arg.CreatedAt,
	)
	return err
}

const getCartItem = `
select ` + cartItemColumns + ` from cart_item
where id = ?
`

func (q *Queries) GetCartItem(ctx context.Context, id string) (CartItem, error) {
	row := q.db.QueryRowContext(ctx, getCartItem, id)
	return scanCartItem(row)
}

const findCartItem = `
select ` + cartItemColumns + ` from cart_item
where supplement_id = ? and store_info_id = ? and order_id is ?
limit 1
`

type FindCartItemParams struct {
	SupplementID string
	StoreInfoID  string
	// an invalid OrderID matches items that are still in the cart
	OrderID sql.NullString
}

func (q *Queries) FindCartItem(ctx context.Context, arg FindCartItemParams) (CartItem, error) {
	row := q.db.QueryRowContext(ctx, findCartItem, arg.SupplementID, arg.StoreInfoID, arg.OrderID)
	return scanCartItem(row)
}

const listCartItemsOfStoreInfo = `
select ` + cartItemColumns + ` from cart_item
where store_info_id = ?
order by created_at, rowid
`

func (q *Queries) ListCartItemsOfStoreInfo(ctx context.Context, storeInfoID string) ([]CartItem, error) {
	rows, err := q.db.QueryContext(ctx, listCartItemsOfStoreInfo, storeInfoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartItem
	for rows.Next() {
		i, err := scanCartItem(rows)
		if err != nil {
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

// CartItemRow is a cart item joined with the names and the current price of
// what it references.
type CartItemRow struct {
	CartItem
	SupplementName string
	StoreName      string
	StorePrice     sql.NullFloat64
}

const cartItemRowSelect = `
select
    c.id, c.supplement_id, c.store_info_id, c.quantity, c.order_id, c.created_at,
    supplement.name, store_info.name, store_info.price
from cart_item as c
inner join supplement on supplement.id = c.supplement_id
inner join store_info on store_info.id = c.store_info_id
`

func (q *Queries) queryCartItemRows(ctx context.Context, query string, args ...any) ([]CartItemRow, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartItemRow
	for rows.Next() {
		var i CartItemRow
		if err := rows.Scan(
			&i.ID,
			&i.SupplementID,
			&i.StoreInfoID,
			&i.Quantity,
			&i.OrderID,
			&i.CreatedAt,
			&i.SupplementName,
			&i.StoreName,
			&i.StorePrice,
		); err != nil {
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

const listCartItemRows = cartItemRowSelect + `
where c.order_id is ?
order by c.created_at, c.rowid
`

// ListCartItemRows lists the items of an order, an invalid orderID lists
// the items still in the cart.
func (q *Queries) ListCartItemRows(ctx context.Context, orderID sql.NullString) ([]CartItemRow, error) {
	return q.queryCartItemRows(ctx, listCartItemRows, orderID)
}

const listOrderedCartItemRows = cartItemRowSelect + `
where c.order_id is not null
order by c.created_at, c.rowid
`

func (q *Queries) ListOrderedCartItemRows(ctx context.Context) ([]CartItemRow, error) {
	return q.queryCartItemRows(ctx, listOrderedCartItemRows)
}

const setCartItemQuantity = `
update cart_item set quantity = ? where id = ?
`

type SetCartItemQuantityParams struct {
	Quantity int64
	ID       string
}

func (q *Queries) SetCartItemQuantity(ctx context.Context, arg SetCartItemQuantityParams) error {
	_, err := q.db.ExecContext(ctx, setCartItemQuantity, arg.Quantity, arg.ID)
	return err
}

const setCartItemStoreInfo = `
update cart_item set store_info_id = ? where id = ?
`

type SetCartItemStoreInfoParams struct {
	StoreInfoID string
	ID          string
}

func (q *Queries) SetCartItemStoreInfo(ctx context.Context, arg SetCartItemStoreInfoParams) error {
	_, err := q.db.ExecContext(ctx, setCartItemStoreInfo, arg.StoreInfoID, arg.ID)
	return err
}

const deleteCartItem = `
delete from cart_item where id = ?
`

func (q *Queries) DeleteCartItem(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteCartItem, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteCartItemsOfSupplement = `
delete from cart_item where supplement_id = ?
`

func (q *Queries) DeleteCartItemsOfSupplement(ctx context.Context, supplementID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteCartItemsOfSupplement, supplementID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const clearCart = `
delete from cart_item where order_id is null
`

func (q *Queries) ClearCart(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, clearCart)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const assignCartItemToOrder = `
update cart_item set order_id = ?
where id = ? and order_id is null
`

type AssignCartItemToOrderParams struct {
	OrderID string
	ID      string
}

// AssignCartItemToOrder returns 0 if the item doesn't exist or already
// belongs to an order.
func (q *Queries) AssignCartItemToOrder(ctx context.Context, arg AssignCartItemToOrderParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, assignCartItemToOrder, arg.OrderID, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const assignCartToOrder = `
update cart_item set order_id = ? where order_id is null
`

func (q *Queries) AssignCartToOrder(ctx context.Context, orderID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, assignCartToOrder, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const countCart = `
select count(*) from cart_item where order_id is null
`

func (q *Queries) CountCart(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countCart)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getCartItemRow = cartItemRowSelect + `
where c.id = ?
`

func (q *Queries) GetCartItemRow(ctx context.Context, id string) (CartItemRow, error) {
	rows, err := q.queryCartItemRows(ctx, getCartItemRow, id)
	if err != nil {
		return CartItemRow{}, err
	}
	if len(rows) == 0 {
		return CartItemRow{}, sql.ErrNoRows
	}
	return rows[0], nil
}
