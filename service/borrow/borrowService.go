package borrowsvc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nasimrifat101/BookWaves-Server/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrAlreadyBorrowed ErrCode = "ALREADY_BORROWED"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrBadInput        ErrCode = "BAD_INPUT"
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

type Repo interface {
	FindActive(ctx context.Context, productID int64, email string) (*model.BorrowRecord, error)
	Insert(ctx context.Context, rec *model.BorrowRecord) error
	ListByEmail(ctx context.Context, email string) ([]model.BorrowRecord, error)
	Delete(ctx context.Context, id int64) (productID int64, email string, err error)
}

type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

type Service interface {
	// Borrow records that email holds the product; at most one active
	// record per (product, email) pair.
	Borrow(ctx context.Context, rec model.BorrowRecord) (*model.BorrowRecord, error)
	ListForEmail(ctx context.Context, email string) ([]model.BorrowRecord, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	r   Repo
	pub Publisher
}

func New(r Repo, pub Publisher) Service {
	return &service{r: r, pub: pub}
}

// Borrow checks for an existing record before inserting. The two store
// calls are not atomic; a concurrent pair can both pass the check. The
// unique index on (product_id, email) catches that loser, and its
// violation is mapped to the same ALREADY_BORROWED code the check yields.
func (s *service) Borrow(ctx context.Context, rec model.BorrowRecord) (*model.BorrowRecord, error) {
	if rec.ProductID <= 0 || rec.Email == "" {
		return nil, makeErr(ErrBadInput)
	}

	existing, err := s.r.FindActive(ctx, rec.ProductID, rec.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, makeErr(ErrAlreadyBorrowed)
	}

	if err := s.r.Insert(ctx, &rec); err != nil {
		if isUniqueViolation(err) {
			return nil, makeErr(ErrAlreadyBorrowed)
		}
		return nil, err
	}

	s.publish(ctx, "borrow.created", &rec)
	return &rec, nil
}

func (s *service) ListForEmail(ctx context.Context, email string) ([]model.BorrowRecord, error) {
	return s.r.ListByEmail(ctx, email)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	productID, email, err := s.r.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return makeErr(ErrNotFound)
	}
	if err != nil {
		return err
	}

	s.publish(ctx, "borrow.deleted", &model.BorrowRecord{
		ID:        id,
		ProductID: productID,
		Email:     email,
	})
	return nil
}

// publish is best-effort; a broker outage must not fail the request.
func (s *service) publish(ctx context.Context, key string, rec *model.BorrowRecord) {
	if s.pub == nil {
		return
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_ = s.pub.Publish(ctx, key, body)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
