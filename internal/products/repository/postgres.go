package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"product_catalog_backend/internal/products/domain"
)

const (
	getProductQuery = `
		SELECT document, created_at
		FROM products
		WHERE uuid = $1`

	countProductsQuery = `SELECT COUNT(*) FROM products WHERE %s`

	listProductsQuery = `
		SELECT document, created_at
		FROM products
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`
)

// querier is the subset of *pgxpool.Pool the repository uses.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresRepo implements Repository on a JSONB document table.
type PostgresRepo struct {
	pool querier
}

// NewPostgres creates a new postgres-backed product repository.
func NewPostgres(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

// Compile-time check that PostgresRepo implements Repository.
var _ Repository = (*PostgresRepo)(nil)

// GetProduct retrieves a product by uuid.
func (r *PostgresRepo) GetProduct(ctx context.Context, id string) (domain.Base, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		// no row can carry a malformed uuid
		return domain.Base{}, domain.ProductNotFound(id)
	}

	var raw []byte
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, getProductQuery, parsed).Scan(&raw, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Base{}, domain.ProductNotFound(id)
		}
		return domain.Base{}, fmt.Errorf("get product by uuid: %w", err)
	}

	return decodeDocument(raw, createdAt)
}

// FindProducts lists products matching predicate, newest first.
func (r *PostgresRepo) FindProducts(ctx context.Context, predicate Predicate, opts FindOptions) ([]domain.Base, error) {
	whereClause, args, err := buildWhere(predicate)
	if err != nil {
		return nil, err
	}

	argIdx := len(args) + 1
	args = append(args, opts.Limit, opts.Skip)
	query := fmt.Sprintf(listProductsQuery, whereClause, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Base, 0)
	for rows.Next() {
		var raw []byte
		var createdAt time.Time
		if err := rows.Scan(&raw, &createdAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		base, err := decodeDocument(raw, createdAt)
		if err != nil {
			return nil, err
		}
		items = append(items, base)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate products: %w", rows.Err())
	}

	return items, nil
}

// CountProducts counts products matching predicate.
func (r *PostgresRepo) CountProducts(ctx context.Context, predicate Predicate) (int, error) {
	whereClause, args, err := buildWhere(predicate)
	if err != nil {
		return 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(countProductsQuery, whereClause), args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// Ping checks the database is reachable.
func (r *PostgresRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// buildWhere renders a predicate as a SQL condition over the document column.
// Equality uses JSONB containment so strings and booleans share one form.
func buildWhere(predicate Predicate) (string, []interface{}, error) {
	if len(predicate) == 0 {
		return "TRUE", nil, nil
	}

	whereClauses := make([]string, 0, len(predicate))
	args := make([]interface{}, 0, len(predicate))
	argIdx := 1

	for _, field := range predicate.Fields() {
		cond := predicate[field]
		switch cond.Op {
		case OpIn:
			whereClauses = append(whereClauses, fmt.Sprintf("document->>'%s' = ANY($%d)", field, argIdx))
			args = append(args, cond.Value)
		default:
			fragment, err := json.Marshal(map[string]interface{}{field: cond.Value})
			if err != nil {
				return "", nil, fmt.Errorf("encode %s condition: %w", field, err)
			}
			whereClauses = append(whereClauses, fmt.Sprintf("document @> $%d::jsonb", argIdx))
			args = append(args, string(fragment))
		}
		argIdx++
	}

	return strings.Join(whereClauses, " AND "), args, nil
}

func decodeDocument(raw []byte, createdAt time.Time) (domain.Base, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Base{}, fmt.Errorf("decode product document: %w", err)
	}
	doc.CreatedAt = createdAt
	return doc.ToBase(), nil
}
