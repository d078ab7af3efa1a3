package repo

import (
	"context"
	"fmt"

	"github.com/prontomx/delivery-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateMessage(ctx context.Context, m entities.Message) error {
	query, args := r.qb.Insert("messages").
		Columns("id", "order_id", "sender_id", "receiver_id", "text", "created_at").
		Values(m.ID, m.OrderID, m.SenderID, m.ReceiverID, m.Text, m.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListMessagesByOrder(ctx context.Context, orderID string) ([]entities.Message, error) {
	query, args := r.qb.Select("id", "order_id", "sender_id", "receiver_id", "text", "created_at").
		From("messages").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at ASC").
		MustSql()

	var rows []Message
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}

	result := make([]entities.Message, 0, len(rows))
	for _, row := range rows {
		result = append(result, MessageToEntity(row))
	}
	return result, nil
}
