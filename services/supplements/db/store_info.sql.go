package db

import (
	"context"
	"database/sql"
)

const storeInfoColumns = `id, supplement_id, name, store_url, info_url, price, created_at`

func scanStoreInfo(scanner interface{ Scan(...any) error }) (StoreInfo, error) {
	var i StoreInfo
	err := scanner.Scan(
		&i.ID,
		&i.SupplementID,
		&i.Name,
		&i.StoreUrl,
		&i.InfoUrl,
		&i.Price,
		&i.CreatedAt,
	)
	return i, err
}

func (q *Queries) queryStoreInfos(ctx context.Context, query string, args ...any) ([]StoreInfo, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StoreInfo
	for rows.Next() {
		i, err := scanStoreInfo(rows)
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

const createStoreInfo = `
insert into store_info (id, supplement_id, name, store_url, info_url, price, created_at)
values (?, ?, ?, ?, ?, ?, ?)
`

type CreateStoreInfoParams struct {
	ID           string
	SupplementID string
	Name         string
	StoreUrl     string
	InfoUrl      string
	Price        sql.NullFloat64
	CreatedAt    int64
}

func (q *Queries) CreateStoreInfo(ctx context.Context, arg CreateStoreInfoParams) error {
	_, err := q.db.ExecContext(ctx, createStoreInfo,
		arg.ID,
		arg.SupplementID,
		arg.Name,
		arg.StoreUrl,
		arg.InfoUrl,
		arg.Price,
		arg.CreatedAt,
	)
	return err
}

const getStoreInfo = `
select ` + storeInfoColumns + ` from store_info
where id = ?
`

func (q *Queries) GetStoreInfo(ctx context.Context, id string) (StoreInfo, error) {
	row := q.db.QueryRowContext(ctx, getStoreInfo, id)
	return scanStoreInfo(row)
}

const listStoreInfos = `
select s.id, s.supplement_id, s.name, s.store_url, s.info_url, s.price, s.created_at
from store_info as s
inner join supplement on supplement.id = s.supplement_id
order by supplement.created_at, supplement.rowid, s.created_at, s.rowid
`

// ListStoreInfos lists every store info grouped by supplement, in creation order.
func (q *Queries) ListStoreInfos(ctx context.Context) ([]StoreInfo, error) {
	return q.queryStoreInfos(ctx, listStoreInfos)
}

const listStoreInfosOfSupplement = `
select ` + storeInfoColumns + ` from store_info
where supplement_id = ?
order by created_at, rowid
`

func (q *Queries) ListStoreInfosOfSupplement(ctx context.Context, supplementID string) ([]StoreInfo, error) {
	return q.queryStoreInfos(ctx, listStoreInfosOfSupplement, supplementID)
}

const updateStoreInfo = `
update store_info
set name = ?, store_url = ?, info_url = ?, price = ?
where id = ?
`

type UpdateStoreInfoParams struct {
	Name     string
	StoreUrl string
	InfoUrl  string
	Price    sql.NullFloat64
	ID       string
}

func (q *Queries) UpdateStoreInfo(ctx context.Context, arg UpdateStoreInfoParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateStoreInfo,
		arg.Name,
		arg.StoreUrl,
		arg.InfoUrl,
		arg.Price,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const setStoreInfoPrice = `
update store_info set price = ? where id = ?
`

type SetStoreInfoPriceParams struct {
	Price sql.NullFloat64
	ID    string
}

// SetStoreInfoPrice returns the number of rows affected, 0 means the store
// info no longer exists.
func (q *Queries) SetStoreInfoPrice(ctx context.Context, arg SetStoreInfoPriceParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setStoreInfoPrice, arg.Price, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteStoreInfo = `
delete from store_info where id = ?
`

func (q *Queries) DeleteStoreInfo(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteStoreInfo, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteStoreInfosOfSupplement = `
delete from store_info where supplement_id = ?
`

func (q *Queries) DeleteStoreInfosOfSupplement(ctx context.Context, supplementID string) error {
	_, err := q.db.ExecContext(ctx, deleteStoreInfosOfSupplement, supplementID)
	return err
}
