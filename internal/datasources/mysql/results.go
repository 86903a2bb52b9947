package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
)

var snapshotCols = []string{
	"item_id", "name", "locality", "ranking_score", "frequency_score", "combined_score",
	"voter_count", "visit_count", "unique_visitors", "computed_at",
}

// CommitResults replaces the stored snapshot set and views inside a single
// transaction. Concurrent readers keep seeing the previous run until commit.
func (r *Repository) CommitResults(
	ctx context.Context, fn func(ctx context.Context, w datasources.ResultWriter) error,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Items dropped from the catalog must not linger on the leaderboard.
	query, args := sqlbuilder.DeleteFrom("item_score_snapshots").Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clearing previous snapshots: %w", err)
	}

	if err := fn(ctx, &resultWriter{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

type resultWriter struct {
	q querier
}

func (w *resultWriter) WriteSnapshot(ctx context.Context, s domain.ItemScoreSnapshot) error {
	ib := sqlbuilder.InsertInto("item_score_snapshots")
	ib.Cols(append([]string{"run_id"}, snapshotCols...)...)
	ib.Values(
		domain.RunIDFromContext(ctx), s.ItemID, s.Name, s.Locality,
		s.RankingScore, s.FrequencyScore, s.CombinedScore,
		s.VoterCount, s.VisitCount, s.UniqueVisitors, s.ComputedAt.UTC(),
	)
	ib.SQL("ON DUPLICATE KEY UPDATE run_id = VALUES(run_id), name = VALUES(name), locality = VALUES(locality), " +
		"ranking_score = VALUES(ranking_score), frequency_score = VALUES(frequency_score), " +
		"combined_score = VALUES(combined_score), voter_count = VALUES(voter_count), " +
		"visit_count = VALUES(visit_count), unique_visitors = VALUES(unique_visitors), " +
		"computed_at = VALUES(computed_at)")

	query, args := ib.Build()
	if _, err := w.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}
	return nil
}

func (w *resultWriter) WriteView(ctx context.Context, view domain.ClassifiedView) error {
	ib := sqlbuilder.InsertInto("classified_views")
	ib.Cols("name", "run_id", "kind", "locality", "computed_at")
	ib.Values(view.Name, domain.RunIDFromContext(ctx), string(view.Kind), view.Locality, view.ComputedAt.UTC())
	ib.SQL("ON DUPLICATE KEY UPDATE run_id = VALUES(run_id), kind = VALUES(kind), " +
		"locality = VALUES(locality), computed_at = VALUES(computed_at)")

	query, args := ib.Build()
	if _, err := w.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting view: %w", err)
	}

	db := sqlbuilder.DeleteFrom("classified_view_entries")
	db.Where(db.Equal("view_name", view.Name))
	query, args = db.Build()
	if _, err := w.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clearing view entries: %w", err)
	}

	if len(view.Entries) == 0 {
		return nil
	}

	eb := sqlbuilder.InsertInto("classified_view_entries")
	eb.Cols("view_name", "entry_rank", "item_id", "name", "locality", "ranking_score", "frequency_score",
		"combined_score", "voter_count", "visit_count", "unique_visitors")
	for _, e := range view.Entries {
		eb.Values(view.Name, e.Rank, e.ItemID, e.Name, e.Locality, e.RankingScore, e.FrequencyScore,
			e.CombinedScore, e.VoterCount, e.VisitCount, e.UniqueVisitors)
	}

	query, args = eb.Build()
	if _, err := w.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting view entries: %w", err)
	}
	return nil
}

func (w *resultWriter) PruneViews(ctx context.Context, keep []string) error {
	for _, target := range []struct{ table, col string }{
		{"classified_view_entries", "view_name"},
		{"classified_views", "name"},
	} {
		db := sqlbuilder.DeleteFrom(target.table)
		if len(keep) > 0 {
			names := make([]interface{}, 0, len(keep))
			for _, name := range keep {
				names = append(names, name)
			}
			db.Where(db.NotIn(target.col, names...))
		}

		query, args := db.Build()
		if _, err := w.q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("pruning %s: %w", target.table, err)
		}
	}
	return nil
}

func (r *Repository) ListLeaderboard(
	ctx context.Context, key domain.SortKey, page, pageSize int,
) ([]domain.ItemScoreSnapshot, error) {
	scoreCol, err := sortKeyColumn(key)
	if err != nil {
		return nil, err
	}

	sb := sqlbuilder.Select(snapshotCols...)
	sb.From("item_score_snapshots")
	sb.OrderBy(scoreCol+" DESC", "voter_count DESC", "item_id")

	limit, offset := paginationToLimitOffset(page, pageSize)
	sb.Limit(limit)
	sb.Offset(offset)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running leaderboard query: %w", err)
	}

	return collectRows(rows, func(rows *sql.Rows) (domain.ItemScoreSnapshot, error) {
		var s domain.ItemScoreSnapshot
		err := rows.Scan(
			&s.ItemID, &s.Name, &s.Locality, &s.RankingScore, &s.FrequencyScore, &s.CombinedScore,
			&s.VoterCount, &s.VisitCount, &s.UniqueVisitors, &s.ComputedAt,
		)
		return s, err
	})
}

func (r *Repository) GetView(ctx context.Context, name string) (domain.ClassifiedView, error) {
	sb := sqlbuilder.Select("name", "kind", "locality", "computed_at")
	sb.From("classified_views")
	sb.Where(sb.Equal("name", name))

	query, args := sb.Build()
	view := domain.ClassifiedView{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&view.Name, &view.Kind, &view.Locality, &view.ComputedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ClassifiedView{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.ClassifiedView{}, fmt.Errorf("fetching view: %w", err)
	}

	eb := sqlbuilder.Select("entry_rank", "item_id", "name", "locality", "ranking_score", "frequency_score",
		"combined_score", "voter_count", "visit_count", "unique_visitors")
	eb.From("classified_view_entries")
	eb.Where(eb.Equal("view_name", name))
	eb.OrderBy("entry_rank")

	query, args = eb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.ClassifiedView{}, fmt.Errorf("running view entries query: %w", err)
	}

	view.Entries, err = collectRows(rows, func(rows *sql.Rows) (domain.ViewEntry, error) {
		var e domain.ViewEntry
		err := rows.Scan(&e.Rank, &e.ItemID, &e.Name, &e.Locality, &e.RankingScore, &e.FrequencyScore,
			&e.CombinedScore, &e.VoterCount, &e.VisitCount, &e.UniqueVisitors)
		return e, err
	})
	if err != nil {
		return domain.ClassifiedView{}, err
	}
	return view, nil
}

func sortKeyColumn(key domain.SortKey) (string, error) {
	switch key {
	case domain.SortByCombined, "":
		return "combined_score", nil
	case domain.SortByRanking:
		return "ranking_score", nil
	case domain.SortByFrequency:
		return "frequency_score", nil
	default:
		return "", fmt.Errorf("unknown sort key: %s", key)
	}
}
