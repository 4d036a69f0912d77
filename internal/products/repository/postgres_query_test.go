package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"product_catalog_backend/internal/products/domain"
	"product_catalog_backend/platform/apperr"
)

type storedRow struct {
	document  string
	createdAt time.Time
}

func scanStored(row storedRow, dest []any) error {
	*dest[0].(*[]byte) = []byte(row.document)
	*dest[1].(*time.Time) = row.createdAt
	return nil
}

type fakeRow struct {
	row storedRow
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanStored(r.row, dest)
}

type fakeRows struct {
	rows []storedRow
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanStored(r.rows[r.idx-1], dest)
}

type fakeQuerier struct {
	row      fakeRow
	rows     []storedRow
	count    int
	lastSQL  string
	lastArgs []any
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.lastSQL, q.lastArgs = sql, args
	return &fakeRows{rows: q.rows}, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL, q.lastArgs = sql, args
	if sql == getProductQuery {
		return q.row
	}
	return countRow(q.count)
}

func (q *fakeQuerier) Ping(context.Context) error { return nil }

type countRow int

func (c countRow) Scan(dest ...any) error {
	*dest[0].(*int) = int(c)
	return nil
}

const storedUUID = "6f1c2b8e-3d4a-4f5b-9c6d-7e8f9a0b1c2d"

func TestPostgresGetProductNoRowsIsNotFound(t *testing.T) {
	repo := &PostgresRepo{pool: &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}}

	_, err := repo.GetProduct(context.Background(), storedUUID)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	domainErr, _ := apperr.As(err)
	if details := domainErr.Details.(domain.NotFoundDetails); details.UUID != storedUUID {
		t.Fatalf("expected uuid %s in details, got %s", storedUUID, details.UUID)
	}
}

func TestPostgresGetProductWrapsDriverErrors(t *testing.T) {
	driverErr := errors.New("conn closed")
	repo := &PostgresRepo{pool: &fakeQuerier{row: fakeRow{err: driverErr}}}

	_, err := repo.GetProduct(context.Background(), storedUUID)
	if !errors.Is(err, driverErr) || apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

func TestPostgresGetProductMalformedUUIDIsNotFound(t *testing.T) {
	q := &fakeQuerier{}
	repo := &PostgresRepo{pool: q}

	_, err := repo.GetProduct(context.Background(), "nonexistent-uuid")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if q.lastSQL != "" {
		t.Fatal("malformed uuid should not reach the database")
	}
}

func TestPostgresGetProductDecodesDocument(t *testing.T) {
	createdAt := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	repo := &PostgresRepo{pool: &fakeQuerier{row: fakeRow{row: storedRow{
		document:  `{"uuid":"` + storedUUID + `","name":"PEI","type":"pei","category":"pee","custodian":"s2e"}`,
		createdAt: createdAt,
	}}}}

	base, err := repo.GetProduct(context.Background(), storedUUID)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if base.Type != domain.TypePei || base.Custodian != domain.CustodianS2E || !base.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected product %+v", base)
	}
}

func TestPostgresFindProductsBindsLimitAndOffset(t *testing.T) {
	q := &fakeQuerier{rows: []storedRow{
		{document: `{"uuid":"b","type":"perob","category":"perob"}`, createdAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{document: `{"uuid":"a","type":"incentive","category":"bonus"}`, createdAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}
	repo := &PostgresRepo{pool: q}

	items, err := repo.FindProducts(context.Background(), FiltersToQuery(Filters{Type: strPtr("perob")}), FindOptions{Skip: 40, Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(items) != 2 || items[0].UUID != "b" || items[1].UUID != "a" {
		t.Fatalf("unexpected items %+v", items)
	}
	if len(q.lastArgs) != 3 || q.lastArgs[1] != 20 || q.lastArgs[2] != 40 {
		t.Fatalf("expected predicate, limit 20, offset 40 args, got %#v", q.lastArgs)
	}
}

func TestPostgresCountProducts(t *testing.T) {
	repo := &PostgresRepo{pool: &fakeQuerier{count: 25}}

	total, err := repo.CountProducts(context.Background(), Predicate{})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if total != 25 {
		t.Fatalf("expected 25, got %d", total)
	}
}
