// service/borrow/borrow_service_test.go
package borrowsvc_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nasimrifat101/BookWaves-Server/model"
	borrowsvc "github.com/nasimrifat101/BookWaves-Server/service/borrow"
)

type repoMock struct {
	findFn   func(ctx context.Context, productID int64, email string) (*model.BorrowRecord, error)
	insertFn func(ctx context.Context, rec *model.BorrowRecord) error
	listFn   func(ctx context.Context, email string) ([]model.BorrowRecord, error)
	deleteFn func(ctx context.Context, id int64) (int64, string, error)
}

func (m *repoMock) FindActive(ctx context.Context, productID int64, email string) (*model.BorrowRecord, error) {
	return m.findFn(ctx, productID, email)
}
func (m *repoMock) Insert(ctx context.Context, rec *model.BorrowRecord) error {
	return m.insertFn(ctx, rec)
}
func (m *repoMock) ListByEmail(ctx context.Context, email string) ([]model.BorrowRecord, error) {
	return m.listFn(ctx, email)
}
func (m *repoMock) Delete(ctx context.Context, id int64) (int64, string, error) {
	return m.deleteFn(ctx, id)
}

type pubMock struct {
	keys []string
}

func (p *pubMock) Publish(ctx context.Context, key string, body []byte) error {
	p.keys = append(p.keys, key)
	return nil
}

func TestBorrow_Success(t *testing.T) {
	m := &repoMock{
		findFn: func(ctx context.Context, productID int64, email string) (*model.BorrowRecord, error) {
			return nil, nil
		},
		insertFn: func(ctx context.Context, rec *model.BorrowRecord) error {
			rec.ID = 11
			return nil
		},
	}
	p := &pubMock{}
	s := borrowsvc.New(m, p)

	rec, err := s.Borrow(context.Background(), model.BorrowRecord{ProductID: 5, Email: "x@y.com"})
	if err != nil || rec.ID != 11 {
		t.Fatalf("got %+v err=%v; want id 11", rec, err)
	}
	if len(p.keys) != 1 || p.keys[0] != "borrow.created" {
		t.Fatalf("published %v; want [borrow.created]", p.keys)
	}
}

func TestBorrow_SecondSequentialConflicts(t *testing.T) {
	inserted := false
	m := &repoMock{
		findFn: func(ctx context.Context, productID int64, email string) (*model.BorrowRecord, error) {
			return &model.BorrowRecord{ID: 1, ProductID: productID, Email: email}, nil
		},
		insertFn: func(ctx context.Context, rec *model.BorrowRecord) error {
			inserted = true
			return nil
		},
	}
	s := borrowsvc.New(m, nil)

	_, err := s.Borrow(context.Background(), model.BorrowRecord{ProductID: 5, Email: "x@y.com"})
	if borrowsvc.Code(err) != borrowsvc.ErrAlreadyBorrowed {
		t.Fatalf("got %v; want ALREADY_BORROWED", err)
	}
	if inserted {
		t.Fatal("insert must not run when the pair already has a record")
	}
}

// The existence check and the insert are two separate store calls, so two
// concurrent borrows for the same pair can both pass the check. The unique
// index rejects the loser; its violation maps to the same conflict code.
func TestBorrow_ConcurrentLoserConflicts(t *testing.T) {
	m := &repoMock{
		findFn: func(ctx context.Context, productID int64, email string) (*model.BorrowRecord, error) {
			return nil, nil
		},
		insertFn: func(ctx context.Context, rec *model.BorrowRecord) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		},
	}
	s := borrowsvc.New(m, nil)

	_, err := s.Borrow(context.Background(), model.BorrowRecord{ProductID: 5, Email: "x@y.com"})
	if borrowsvc.Code(err) != borrowsvc.ErrAlreadyBorrowed {
		t.Fatalf("got %v; want ALREADY_BORROWED", err)
	}
}

func TestBorrow_BadInput(t *testing.T) {
	s := borrowsvc.New(&repoMock{}, nil)
	if _, err := s.Borrow(context.Background(), model.BorrowRecord{Email: "x@y.com"}); borrowsvc.Code(err) != borrowsvc.ErrBadInput {
		t.Fatalf("got %v; want BAD_INPUT", err)
	}
	if _, err := s.Borrow(context.Background(), model.BorrowRecord{ProductID: 5}); borrowsvc.Code(err) != borrowsvc.ErrBadInput {
		t.Fatalf("got %v; want BAD_INPUT", err)
	}
}

func TestBorrow_StoreError(t *testing.T) {
	m := &repoMock{
		findFn: func(ctx context.Context, productID int64, email string) (*model.BorrowRecord, error) {
			return nil, errors.New("db down")
		},
	}
	s := borrowsvc.New(m, nil)
	if _, err := s.Borrow(context.Background(), model.BorrowRecord{ProductID: 5, Email: "x@y.com"}); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestDelete(t *testing.T) {
	p := &pubMock{}
	m := &repoMock{
		deleteFn: func(ctx context.Context, id int64) (int64, string, error) {
			if id == 404 {
				return 0, "", sql.ErrNoRows
			}
			return 5, "x@y.com", nil
		},
	}
	s := borrowsvc.New(m, p)

	if err := s.Delete(context.Background(), 11); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(p.keys) != 1 || p.keys[0] != "borrow.deleted" {
		t.Fatalf("published %v; want [borrow.deleted]", p.keys)
	}
	if err := s.Delete(context.Background(), 404); borrowsvc.Code(err) != borrowsvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}

func TestListForEmail(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, email string) ([]model.BorrowRecord, error) {
			return []model.BorrowRecord{{ID: 1, Email: email}}, nil
		},
	}
	s := borrowsvc.New(m, nil)
	rows, err := s.ListForEmail(context.Background(), "x@y.com")
	if err != nil || len(rows) != 1 || rows[0].Email != "x@y.com" {
		t.Fatalf("got %v err=%v", rows, err)
	}
}
