package db

import (
	"context"
)

const createSupplement = `
insert into supplement (id, name, price, dosage, quantity, type, created_at)
values (?, ?, ?, ?, ?, ?, ?)
`

type CreateSupplementParams struct {
	ID        string
	Name      string
	Price     float64
	Dosage    string
	Quantity  int64
	Type      string
	CreatedAt int64
}

func (q *Queries) CreateSupplement(ctx context.Context, arg CreateSupplementParams) error {
	_, err := q.db.ExecContext(ctx, createSupplement,
		arg.ID,
		arg.Name,
		arg.Price,
		arg.Dosage,
		arg.Quantity,
		arg.Type,
		arg.CreatedAt,
	)
	return err
}

const getSupplement = `
select id, name, price, dosage, quantity, type, created_at from supplement
where id = ?
`

func (q *Queries) GetSupplement(ctx context.Context, id string) (Supplement, error) {
	row := q.db.QueryRowContext(ctx, getSupplement, id)
	var i Supplement
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Price,
		&i.Dosage,
		&i.Quantity,
		&i.Type,
		&i.CreatedAt,
	)
	return i, err
}

const listSupplements = `
select id, name, price, dosage, quantity, type, created_at from supplement
order by created_at, rowid
`

func (q *Queries) ListSupplements(ctx context.Context) ([]Supplement, error) {
	rows, err := q.db.QueryContext(ctx, listSupplements)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Supplement
	for rows.Next() {
		var i Supplement
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Price,
			&i.Dosage,
			&i.Quantity,
			&i.Type,
			&i.CreatedAt,
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

const updateSupplement = `
update supplement
set name = ?, price = ?, dosage = ?, quantity = ?, type = ?
where id = ?
`

type UpdateSupplementParams struct {
	Name     string
	Price    float64
	Dosage   string
	Quantity int64
	Type     string
	ID       string
}

func (q *Queries) UpdateSupplement(ctx context.Context, arg UpdateSupplementParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateSupplement,
		arg.Name,
		arg.Price,
		arg.Dosage,
		arg.Quantity,
		arg.Type,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteSupplement = `
delete from supplement where id = ?
`

func (q *Queries) DeleteSupplement(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteSupplement, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const addSupplementCategory = `
insert or ignore into supplement_category (supplement_id, category)
values (?, ?)
`

type AddSupplementCategoryParams struct {
	SupplementID string
	Category     string
}

func (q *Queries) AddSupplementCategory(ctx context.Context, arg AddSupplementCategoryParams) error {
	_, err := q.db.ExecContext(ctx, addSupplementCategory, arg.SupplementID, arg.Category)
	return err
}

const deleteSupplementCategories = `
delete from supplement_category where supplement_id = ?
`

func (q *Queries) DeleteSupplementCategories(ctx context.Context, supplementID string) error {
	_, err := q.db.ExecContext(ctx, deleteSupplementCategories, supplementID)
	return err
}

const listSupplementCategories = `
select supplement_id, category from supplement_category
order by supplement_id, rowid
`

func (q *Queries) ListSupplementCategories(ctx context.Context) ([]SupplementCategory, error) {
	rows, err := q.db.QueryContext(ctx, listSupplementCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SupplementCategory
	for rows.Next() {
		var i SupplementCategory
		if err := rows.Scan(&i.SupplementID, &i.Category); err != nil {
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

const listCategoriesOfSupplement = `
select category from supplement_category
where supplement_id = ?
order by rowid
`

func (q *Queries) ListCategoriesOfSupplement(ctx context.Context, supplementID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listCategoriesOfSupplement, supplementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		items = append(items, category)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listDistinctCategories = `
select distinct category from supplement_category
order by category collate nocase
`

func (q *Queries) ListDistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listDistinctCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		items = append(items, category)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
