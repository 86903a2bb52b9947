package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

// mysqlErrNoReferencedRow is returned when a foreign key names a missing row.
const mysqlErrNoReferencedRow = 1452

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListRankedItems(ctx context.Context) ([]domain.RankedItem, error) {
	sb := sqlbuilder.Select("id", "kind", "name", "locality")
	sb.From("ranked_items")
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running ranked items query: %w", err)
	}

	return collectRows(rows, func(rows *sql.Rows) (domain.RankedItem, error) {
		var item domain.RankedItem
		err := rows.Scan(&item.ID, &item.Kind, &item.Name, &item.Locality)
		return item, err
	})
}

func (r *Repository) ListActiveRankings(ctx context.Context, itemID string) ([]domain.UserRanking, error) {
	sb := sqlbuilder.Select("user_id", "item_id", "category", "position", "updated_at")
	sb.From("user_rankings")
	sb.Where(sb.Equal("item_id", itemID))
	sb.OrderBy("user_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running rankings query: %w", err)
	}

	return collectRows(rows, func(rows *sql.Rows) (domain.UserRanking, error) {
		var ranking domain.UserRanking
		err := rows.Scan(&ranking.UserID, &ranking.ItemID, &ranking.Category, &ranking.Position, &ranking.UpdatedAt)
		return ranking, err
	})
}

func (r *Repository) ListVisits(ctx context.Context, itemID string, since time.Time) ([]domain.VisitEvent, error) {
	sb := sqlbuilder.Select("user_id", "item_id", "visited_at")
	sb.From("visits")
	sb.Where(
		sb.Equal("item_id", itemID),
		sb.GreaterEqualThan("visited_at", since.UTC()),
	)
	sb.OrderBy("visited_at")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running visits query: %w", err)
	}

	return collectRows(rows, func(rows *sql.Rows) (domain.VisitEvent, error) {
		var visit domain.VisitEvent
		err := rows.Scan(&visit.UserID, &visit.ItemID, &visit.VisitedAt)
		return visit, err
	})
}

// ReplaceUserRankings swaps a user's list for a category in one transaction.
// Items the user had placed in another category's list move to this one.
func (r *Repository) ReplaceUserRankings(
	ctx context.Context, userID, category string, rankings []domain.UserRanking,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	db := sqlbuilder.DeleteFrom("user_rankings")
	db.Where(db.Equal("user_id", userID), db.Equal("category", category))
	query, args := db.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting previous list: %w", err)
	}

	if len(rankings) > 0 {
		ib := sqlbuilder.InsertInto("user_rankings")
		ib.Cols("user_id", "item_id", "category", "position", "updated_at")
		for _, ranking := range rankings {
			ib.Values(ranking.UserID, ranking.ItemID, ranking.Category, ranking.Position, ranking.UpdatedAt.UTC())
		}
		ib.SQL("ON DUPLICATE KEY UPDATE category = VALUES(category), position = VALUES(position), " +
			"updated_at = VALUES(updated_at)")

		query, args := ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting rankings: %w", translateError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) RecordVisit(ctx context.Context, visit domain.VisitEvent) error {
	ib := sqlbuilder.InsertInto("visits")
	ib.Cols("user_id", "item_id", "visited_at")
	ib.Values(visit.UserID, visit.ItemID, visit.VisitedAt.UTC())

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting visit: %w", translateError(err))
	}
	return nil
}

// translateError maps a foreign key violation on item_id to domain.ErrNotFound.
func translateError(err error) error {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlErrNoReferencedRow {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, myErr.Message)
	}
	return err
}

func collectRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer func() { _ = rows.Close() }()

	results := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, v)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return results, nil
}

// paginationToLimitOffset converts page/pageSize to limit/offset with bounds checking.
func paginationToLimitOffset(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}
	if pageSize > 0 && page-1 > math.MaxInt32/pageSize {
		return pageSize, math.MaxInt32
	}
	return pageSize, (page - 1) * pageSize
}
