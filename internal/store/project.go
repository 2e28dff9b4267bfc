package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"planline.app/api-server/internal/model"
)

type projectStore struct {
	q querier
}

const projectColumns = "id, organization_id, name, description, status, due_date, created_at, updated_at"

func (s *projectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	row := s.q.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1", id)
	return scanProject(row)
}

func (s *projectStore) Create(ctx context.Context, project *model.Project) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO projects (id, organization_id, name, description, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		project.ID, project.OrganizationID, project.Name, project.Description,
		string(project.Status), project.DueDate)
	return row.Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (s *projectStore) Update(ctx context.Context, project *model.Project) error {
	row := s.q.QueryRow(ctx, `
		UPDATE projects
		SET name = $2, description = $3, status = $4, due_date = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		project.ID, project.Name, project.Description, string(project.Status), project.DueDate)
	if err := row.Scan(&project.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *projectStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Project, error) {
	rows, err := s.q.Query(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE organization_id = $1 ORDER BY id", orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func scanProject(row pgx.Row) (*model.Project, error) {
	var (
		project model.Project
		status  string
	)
	err := row.Scan(&project.ID, &project.OrganizationID, &project.Name, &project.Description,
		&status, &project.DueDate, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	project.Status = model.ProjectStatus(status)
	return &project, nil
}
