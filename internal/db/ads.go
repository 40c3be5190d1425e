package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// Ads returns every ad regardless of state, newest first. Admin listing.
func (r *Repository) Ads(ctx context.Context) ([]Ad, error) {
	var ads []Ad
	err := r.db.ModelContext(ctx, &ads).
		OrderExpr(`"t"."created_at" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("query ads: %w", err)
	}

	return ads, nil
}

func (r *Repository) AdByID(ctx context.Context, id uuid.UUID) (*Ad, error) {
	ad := &Ad{ID: id}
	err := r.db.ModelContext(ctx, ad).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("query ad by id: %w", err)
	}

	return ad, nil
}

// ActiveAdsByPosition returns active ads for one placement slot whose date
// window, when set, contains now.
func (r *Repository) ActiveAdsByPosition(ctx context.Context, position string, now time.Time) ([]Ad, error) {
	var ads []Ad
	err := r.db.ModelContext(ctx, &ads).
		Where(`"t"."position" = ?`, position).
		Where(`"t"."active" = TRUE`).
		Where(`("t"."start_date" IS NULL OR "t"."start_date" <= ?)`, now).
		Where(`("t"."end_date" IS NULL OR "t"."end_date" >= ?)`, now).
		OrderExpr(`"t"."created_at" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("query ads by position: %w", err)
	}

	return ads, nil
}

func (r *Repository) CreateAd(ctx context.Context, ad *Ad) error {
	if _, err := r.db.ModelContext(ctx, ad).Insert(); err != nil {
		return fmt.Errorf("insert ad: %w", err)
	}

	return nil
}

func (r *Repository) UpdateAd(ctx context.Context, ad *Ad) error {
	if _, err := r.db.ModelContext(ctx, ad).WherePK().Update(); err != nil {
		return fmt.Errorf("update ad: %w", err)
	}

	return nil
}

func (r *Repository) DeleteAd(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, &Ad{ID: id}).WherePK().Delete()
	if err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}

	return nil
}

// IncrementAdClicks bumps the click counter in a single statement so
// concurrent clicks are never lost to read-modify-write races.
func (r *Repository) IncrementAdClicks(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, &Ad{ID: id}).
		Set(`clicks = clicks + 1`).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("increment ad clicks: %w", err)
	}

	return nil
}

// IncrementAdImpressions bumps the impression counter for a batch of ads.
func (r *Repository) IncrementAdImpressions(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE ads SET impressions = impressions + 1 WHERE id IN (?)`, pg.In(ids))
	if err != nil {
		return fmt.Errorf("increment ad impressions: %w", err)
	}

	return nil
}
