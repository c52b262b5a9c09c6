package borrowrepo

import (
	"context"
	"database/sql"

	"github.com/nasimrifat101/BookWaves-Server/model"
)

type Repo interface {
	// FindActive returns nil, nil when the pair has no active borrow.
	FindActive(ctx context.Context, productID int64, email string) (*model.BorrowRecord, error)
	Insert(ctx context.Context, rec *model.BorrowRecord) error
	ListByEmail(ctx context.Context, email string) ([]model.BorrowRecord, error)
	// Delete reports the removed record's product id, or sql.ErrNoRows.
	Delete(ctx context.Context, id int64) (productID int64, email string, err error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) FindActive(ctx context.Context, productID int64, email string) (*model.BorrowRecord, error) {
	const q = `
SELECT id, product_id, product_name, product_image, product_category, email, created_at
FROM borrows
WHERE product_id=$1 AND email=$2`
	var rec model.BorrowRecord
	err := r.db.QueryRowContext(ctx, q, productID, email).Scan(
		&rec.ID, &rec.ProductID, &rec.ProductName, &rec.ProductImage,
		&rec.ProductCategory, &rec.Email, &rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repo) Insert(ctx context.Context, rec *model.BorrowRecord) error {
	const q = `
INSERT INTO borrows (product_id, product_name, product_image, product_category, email)
VALUES ($1,$2,$3,$4,$5)
RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		rec.ProductID, rec.ProductName, rec.ProductImage, rec.ProductCategory, rec.Email,
	).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *repo) ListByEmail(ctx context.Context, email string) ([]model.BorrowRecord, error) {
	const q = `
SELECT id, product_id, product_name, product_image, product_category, email, created_at
FROM borrows
WHERE email=$1
ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BorrowRecord
	for rows.Next() {
		var rec model.BorrowRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProductID, &rec.ProductName, &rec.ProductImage,
			&rec.ProductCategory, &rec.Email, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *repo) Delete(ctx context.Context, id int64) (int64, string, error) {
	const q = `DELETE FROM borrows WHERE id=$1 RETURNING product_id, email`
	var productID int64
	var email string
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&productID, &email); err != nil {
		return 0, "", err
	}
	return productID, email, nil
}
