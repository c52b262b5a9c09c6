package bookrepo

import (
	"context"
	"database/sql"

	"github.com/nasimrifat101/BookWaves-Server/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Book) (int64, error)
	Update(ctx context.Context, id int64, b model.Book) (int64, error)
	SetQuantity(ctx context.Context, id, quantity int64) (int64, error)
	Increment(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, category string) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Book) (int64, error) {
	const q = `
INSERT INTO books (image, name, author, category, quantity, rating)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q,
		b.Image, b.Name, b.Author, b.Category, b.Quantity, b.Rating,
	).Scan(&id); err != nil {
		return 0, err
	}
	b.ID = id
	return id, nil
}

// Update replaces the allow-listed field set wholesale; fields absent from
// the request arrive as zero values and are written as such.
func (r *repo) Update(ctx context.Context, id int64, b model.Book) (int64, error) {
	const q = `
UPDATE books
SET image=$2, name=$3, author=$4, category=$5, quantity=$6, rating=$7
WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q,
		id, b.Image, b.Name, b.Author, b.Category, b.Quantity, b.Rating)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) SetQuantity(ctx context.Context, id, quantity int64) (int64, error) {
	const q = `UPDATE books SET quantity=$2 WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, id, quantity)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Increment bumps quantity by one in a single statement, the store-level
// atomic equivalent of a find-and-update, and returns the updated row.
func (r *repo) Increment(ctx context.Context, id int64) (*model.Book, error) {
	const q = `
UPDATE books
SET quantity = quantity + 1
WHERE id=$1
RETURNING id, image, name, author, category, quantity, rating`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.Image, &b.Name, &b.Author, &b.Category, &b.Quantity, &b.Rating,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) List(ctx context.Context, category string) ([]model.Book, error) {
	const qAll = `
SELECT id, image, name, author, category, quantity, rating
FROM books
ORDER BY id DESC`
	const qCat = `
SELECT id, image, name, author, category, quantity, rating
FROM books
WHERE category=$1
ORDER BY id DESC`

	var (
		rows *sql.Rows
		err  error
	)
	if category == "" {
		rows, err = r.db.QueryContext(ctx, qAll)
	} else {
		rows, err = r.db.QueryContext(ctx, qCat, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Image, &b.Name, &b.Author, &b.Category, &b.Quantity, &b.Rating); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Book, error) {
	const q = `
SELECT id, image, name, author, category, quantity, rating
FROM books
WHERE id=$1`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.Image, &b.Name, &b.Author, &b.Category, &b.Quantity, &b.Rating,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM books WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
