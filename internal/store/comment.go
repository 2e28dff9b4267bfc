package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"planline.app/api-server/internal/model"
)

type commentStore struct {
	q querier
}

const commentColumns = "id, task_id, author_id, content, created_at, updated_at"

func (s *commentStore) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	row := s.q.QueryRow(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE id = $1", id)
	return scanComment(row)
}

func (s *commentStore) Create(ctx context.Context, comment *model.Comment) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO comments (id, task_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		comment.ID, comment.TaskID, comment.AuthorID, comment.Content)
	return row.Scan(&comment.CreatedAt, &comment.UpdatedAt)
}

func (s *commentStore) Update(ctx context.Context, comment *model.Comment) error {
	row := s.q.QueryRow(ctx, `
		UPDATE comments
		SET content = $2, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		comment.ID, comment.Content)
	if err := row.Scan(&comment.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *commentStore) ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error) {
	rows, err := s.q.Query(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE task_id = $1 ORDER BY id", taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var comment model.Comment
	err := row.Scan(&comment.ID, &comment.TaskID, &comment.AuthorID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}
