package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// ErrEmailTaken reports a unique-constraint violation on users.email.
var ErrEmailTaken = errors.New("email already registered")

func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."email" = ?`, email).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user := &User{ID: id}
	err := r.db.ModelContext(ctx, user).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("query user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	_, err := r.db.ModelContext(ctx, user).Insert()
	if isIntegrityViolation(err) {
		return ErrEmailTaken
	} else if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// HasRole reports whether the user holds the given role.
func (r *Repository) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	count, err := r.db.ModelContext(ctx, (*UserRole)(nil)).
		Where(`"t"."user_id" = ?`, userID).
		Where(`"t"."role" = ?`, role).
		Count()
	if err != nil {
		return false, fmt.Errorf("query user role: %w", err)
	}

	return count > 0, nil
}

// AssignRole grants a role to a user. Granting an already-held role is a
// no-op thanks to the unique (user_id, role) index.
func (r *Repository) AssignRole(ctx context.Context, userID uuid.UUID, role string) error {
	userRole := &UserRole{
		ID:     uuid.New(),
		UserID: userID,
		Role:   role,
	}
	_, err := r.db.ModelContext(ctx, userRole).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return fmt.Errorf("insert user role: %w", err)
	}

	return nil
}
