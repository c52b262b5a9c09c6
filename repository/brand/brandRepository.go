package brandrepo

import (
	"context"
	"database/sql"

	"github.com/nasimrifat101/BookWaves-Server/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Brand, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) List(ctx context.Context) ([]model.Brand, error) {
	const q = `SELECT id, name, image FROM brands ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Brand
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Image); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
