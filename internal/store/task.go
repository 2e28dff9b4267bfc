package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"planline.app/api-server/internal/model"
)

type taskStore struct {
	q querier
}

const taskColumns = "id, project_id, title, description, status, assignee_id, due_date, created_at, updated_at"

func (s *taskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	row := s.q.QueryRow(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
	return scanTask(row)
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO tasks (id, project_id, title, description, status, assignee_id, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		task.ID, task.ProjectID, task.Title, task.Description,
		string(task.Status), task.AssigneeID, task.DueDate)
	return row.Scan(&task.CreatedAt, &task.UpdatedAt)
}

func (s *taskStore) Update(ctx context.Context, task *model.Task) error {
	row := s.q.QueryRow(ctx, `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, assignee_id = $5, due_date = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		task.ID, task.Title, task.Description, string(task.Status), task.AssigneeID, task.DueDate)
	if err := row.Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *taskStore) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	rows, err := s.q.Query(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE project_id = $1 ORDER BY id", projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (s *taskStore) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	var count int64
	err := s.q.QueryRow(ctx,
		"SELECT count(*) FROM tasks WHERE project_id = $1", projectID).Scan(&count)
	return count, err
}

func (s *taskStore) CountByProjectAndStatus(ctx context.Context, projectID int64, status model.TaskStatus) (int64, error) {
	var count int64
	err := s.q.QueryRow(ctx,
		"SELECT count(*) FROM tasks WHERE project_id = $1 AND status = $2",
		projectID, string(status)).Scan(&count)
	return count, err
}

func scanTask(row pgx.Row) (*model.Task, error) {
	var (
		task   model.Task
		status string
	)
	err := row.Scan(&task.ID, &task.ProjectID, &task.Title, &task.Description,
		&status, &task.AssigneeID, &task.DueDate, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	task.Status = model.TaskStatus(status)
	return &task, nil
}
