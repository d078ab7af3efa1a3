package repo

import (
	"context"
	"fmt"

	"github.com/prontomx/delivery-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateReview(ctx context.Context, review entities.Review) error {
	query, args := r.qb.Insert("reviews").
		Columns("id", "order_id", "store_id", "customer_id", "rating", "comment", "created_at").
		Values(
			review.ID, review.OrderID, review.StoreID, review.CustomerID,
			review.Rating, nullString(review.Comment), review.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListReviewsByStore(ctx context.Context, storeID string) ([]entities.Review, error) {
	query, args := r.qb.Select("id", "order_id", "store_id", "customer_id", "rating", "comment", "created_at").
		From("reviews").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("created_at DESC").
		MustSql()

	var rows []Review
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select reviews: %w", err)
	}

	result := make([]entities.Review, 0, len(rows))
	for _, row := range rows {
		result = append(result, ReviewToEntity(row))
	}
	return result, nil
}

// StoreRating recomputes the running average and count over all accepted
// reviews for a store.
func (r *postgresRepo) StoreRating(ctx context.Context, storeID string) (float64, int, error) {
	query, args := r.qb.Select("COALESCE(AVG(rating), 0) AS average", "COUNT(*) AS count").
		From("reviews").
		Where(sq.Eq{"store_id": storeID}).
		MustSql()

	var row struct {
		Average float64 `db:"average"`
		Count   int     `db:"count"`
	}
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return 0, 0, fmt.Errorf("failed to compute store rating: %w", err)
	}

	return row.Average, row.Count, nil
}
