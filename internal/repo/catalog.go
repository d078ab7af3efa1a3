package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prontomx/delivery-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetColonyByID(ctx context.Context, colonyID string) (entities.Colony, error) {
	query, args := r.qb.Select("id", "name", "lat", "lng").
		From("colonies").
		Where(sq.Eq{"id": colonyID}).
		MustSql()

	var colony Colony
	err := r.getContext(ctx, &colony, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Colony{}, entities.ErrColonyNotFound
	}
	if err != nil {
		return entities.Colony{}, fmt.Errorf("failed to get colony: %w", err)
	}

	return ColonyToEntity(colony), nil
}

func (r *postgresRepo) ListColonies(ctx context.Context) ([]entities.Colony, error) {
	query, args := r.qb.Select("id", "name", "lat", "lng").
		From("colonies").
		OrderBy("name ASC").
		MustSql()

	var rows []Colony
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select colonies: %w", err)
	}

	result := make([]entities.Colony, 0, len(rows))
	for _, row := range rows {
		result = append(result, ColonyToEntity(row))
	}
	return result, nil
}

func (r *postgresRepo) CreateColony(ctx context.Context, c entities.Colony) error {
	query, args := r.qb.Insert("colonies").
		Columns("id", "name", "lat", "lng").
		Values(c.ID, c.Name, c.Lat, c.Lng).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save colony: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateColony(ctx context.Context, c entities.Colony) (entities.Colony, error) {
	query, args := r.qb.Update("colonies").
		Set("name", c.Name).
		Set("lat", c.Lat).
		Set("lng", c.Lng).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING id, name, lat, lng").
		MustSql()

	var colony Colony
	err := r.getContext(ctx, &colony, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Colony{}, entities.ErrColonyNotFound
	}
	if err != nil {
		return entities.Colony{}, fmt.Errorf("failed to update colony: %w", err)
	}

	return ColonyToEntity(colony), nil
}

func (r *postgresRepo) DeleteColony(ctx context.Context, colonyID string) error {
	query, args := r.qb.Delete("colonies").
		Where(sq.Eq{"id": colonyID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete colony: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrColonyNotFound
	}
	return nil
}

// GetSettings reads the tariff singleton. The row is seeded by migration, so
// a missing row is reference-data damage, not a normal state.
func (r *postgresRepo) GetSettings(ctx context.Context) (entities.Settings, error) {
	query, args := r.qb.Select("base_fee", "km_rate").
		From("settings").
		Limit(1).
		MustSql()

	var settings Settings
	err := r.getContext(ctx, &settings, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Settings{}, entities.ErrSettingsNotFound
	}
	if err != nil {
		return entities.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return entities.Settings{BaseFee: settings.BaseFee, KmRate: settings.KmRate}, nil
}

// UpdateSettings overwrites the singleton, last writer wins.
func (r *postgresRepo) UpdateSettings(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	query, args := r.qb.Update("settings").
		Set("base_fee", s.BaseFee).
		Set("km_rate", s.KmRate).
		Suffix("RETURNING base_fee, km_rate").
		MustSql()

	var settings Settings
	err := r.getContext(ctx, &settings, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Settings{}, entities.ErrSettingsNotFound
	}
	if err != nil {
		return entities.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	return entities.Settings{BaseFee: settings.BaseFee, KmRate: settings.KmRate}, nil
}

// GetProductsByIDs returns the authoritative product rows for the requested
// ids; missing ids are simply absent from the result.
func (r *postgresRepo) GetProductsByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error) {
	if len(productIDs) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select("id", "store_id", "name", "price", "category").
		From("products").
		Where(sq.Eq{"id": productIDs}).
		MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		result = append(result, ProductToEntity(row))
	}
	return result, nil
}

func (r *postgresRepo) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	query, args := r.qb.Select(
		"id", "role", "first_name", "last_name",
		"store_name", "store_colony_id", "average_rating", "rating_count").
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return UserToEntity(user), nil
}

// UpdateStoreRating persists the aggregator's recomputed running rating.
func (r *postgresRepo) UpdateStoreRating(ctx context.Context, storeID string, average float64, count int) (entities.User, error) {
	query, args := r.qb.Update("users").
		Set("average_rating", average).
		Set("rating_count", count).
		Where(sq.Eq{"id": storeID}).
		Suffix("RETURNING id, role, first_name, last_name, store_name, store_colony_id, average_rating, rating_count").
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to update store rating: %w", err)
	}

	return UserToEntity(user), nil
}
