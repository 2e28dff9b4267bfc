package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"planline.app/api-server/internal/model"
)

type userStore struct {
	q querier
}

const userColumns = "id, email, organization_id, is_active, is_staff, created_at, updated_at"

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := s.q.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.q.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func (s *userStore) GetByEmailInOrganization(ctx context.Context, email string, orgID int64) (*model.User, error) {
	row := s.q.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1 AND organization_id = $2", email, orgID)
	return scanUser(row)
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO users (id, email, organization_id, is_active, is_staff)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		user.ID, user.Email, user.OrganizationID, user.IsActive, user.IsStaff)
	return row.Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (s *userStore) Update(ctx context.Context, user *model.User) error {
	row := s.q.QueryRow(ctx, `
		UPDATE users
		SET email = $2, organization_id = $3, is_active = $4, is_staff = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		user.ID, user.Email, user.OrganizationID, user.IsActive, user.IsStaff)
	if err := row.Scan(&user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Email, &user.OrganizationID, &user.IsActive, &user.IsStaff, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
