package db

import (
	"context"
)

const listLookupOptions = `
select kind, name from lookup_option where kind = ?
order by name collate nocase, name
`

func (q *Queries) ListLookupOptions(ctx context.Context, kind string) ([]LookupOption, error) {
	rows, err := q.db.QueryContext(ctx, listLookupOptions, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LookupOption
	for rows.Next() {
		var i LookupOption
		if err := rows.Scan(&i.Kind, &i.Name); err != nil {
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

const addLookupOption = `
insert into lookup_option (kind, name) values (?, ?)
on conflict (kind, name) do nothing
`

type AddLookupOptionParams struct {
	Kind string
	Name string
}

func (q *Queries) AddLookupOption(ctx context.Context, arg AddLookupOptionParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, addLookupOption, arg.Kind, arg.Name)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteLookupOption = `
delete from lookup_option where kind = ? and name = ?
`

type DeleteLookupOptionParams struct {
	Kind string
	Name string
}

func (q *Queries) DeleteLookupOption(ctx context.Context, arg DeleteLookupOptionParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteLookupOption, arg.Kind, arg.Name)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
