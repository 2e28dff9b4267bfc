package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"planline.app/api-server/internal/model"
)

type organizationStore struct {
	q querier
}

const organizationColumns = "id, name, slug, contact_email, created_at, updated_at"

func (s *organizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	row := s.q.QueryRow(ctx,
		"SELECT "+organizationColumns+" FROM organizations WHERE id = $1", id)
	return scanOrganization(row)
}

func (s *organizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	row := s.q.QueryRow(ctx,
		"SELECT "+organizationColumns+" FROM organizations WHERE slug = $1", slug)
	return scanOrganization(row)
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO organizations (id, name, slug, contact_email)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		org.ID, org.Name, org.Slug, org.ContactEmail)
	return row.Scan(&org.CreatedAt, &org.UpdatedAt)
}

func (s *organizationStore) Update(ctx context.Context, org *model.Organization) error {
	row := s.q.QueryRow(ctx, `
		UPDATE organizations
		SET name = $2, slug = $3, contact_email = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		org.ID, org.Name, org.Slug, org.ContactEmail)
	if err := row.Scan(&org.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func scanOrganization(row pgx.Row) (*model.Organization, error) {
	var org model.Organization
	err := row.Scan(&org.ID, &org.Name, &org.Slug, &org.ContactEmail, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}
