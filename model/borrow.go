// model/borrow.go
package model

import "time"

// BorrowRecord is a persisted fact that a user currently holds a book.
// Product fields are a snapshot taken at borrow time so the record stays
// renderable even if the book is edited later.
type BorrowRecord struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductImage    string    `json:"product_image"`
	ProductCategory string    `json:"product_category"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"created_at"`
}
