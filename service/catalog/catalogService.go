package catalogsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nasimrifat101/BookWaves-Server/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound    ErrCode = "NOT_FOUND"
	ErrUnavailable ErrCode = "UNAVAILABLE"
	ErrBadInput    ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type BookRepo interface {
	Create(ctx context.Context, b *model.Book) (int64, error)
	Update(ctx context.Context, id int64, b model.Book) (int64, error)
	SetQuantity(ctx context.Context, id, quantity int64) (int64, error)
	Increment(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, category string) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type BrandRepo interface {
	List(ctx context.Context) ([]model.Brand, error)
}

type Service interface {
	Brands(ctx context.Context) ([]model.Brand, error)
	Create(ctx context.Context, b model.Book) (int64, error)
	Update(ctx context.Context, id int64, b model.Book) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, category string) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	SetQuantity(ctx context.Context, id, quantity int64) error
	Increment(ctx context.Context, id int64) (*model.Book, error)
}

type service struct {
	books  BookRepo
	brands BrandRepo
}

func New(books BookRepo, brands BrandRepo) Service {
	return &service{books: books, brands: brands}
}

func (s *service) Brands(ctx context.Context) ([]model.Brand, error) {
	return s.brands.List(ctx)
}

func (s *service) Create(ctx context.Context, b model.Book) (int64, error) {
	if b.Name == "" || b.Quantity < 0 {
		return 0, makeErr(ErrBadInput)
	}
	return s.books.Create(ctx, &b)
}

func (s *service) Update(ctx context.Context, id int64, b model.Book) (int64, error) {
	return s.books.Update(ctx, id, b)
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.books.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, category string) ([]model.Book, error) {
	return s.books.List(ctx, category)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.books.Detail(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrNotFound)
	}
	return b, err
}

// SetQuantity always performs the write; a zero quantity is additionally
// surfaced as Unavailable so the caller can tell the book is out of stock.
func (s *service) SetQuantity(ctx context.Context, id, quantity int64) error {
	if quantity < 0 {
		return makeErr(ErrBadInput)
	}
	if _, err := s.books.SetQuantity(ctx, id, quantity); err != nil {
		return err
	}
	if quantity == 0 {
		return makeErr(ErrUnavailable)
	}
	return nil
}

func (s *service) Increment(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.books.Increment(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrNotFound)
	}
	return b, err
}
