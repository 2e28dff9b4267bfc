package service

import (
	"context"
	"fmt"
	"log/slog"

	"planline.app/api-server/common/id"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/store"
)

type CommentService interface {
	List(ctx context.Context, actor *model.Actor, taskID int64) ([]model.Comment, error)
	Add(ctx context.Context, actor *model.Actor, taskID int64, content string) (*model.Comment, error)
	Update(ctx context.Context, actor *model.Actor, id int64, content string) (*model.Comment, error)
}

type commentService struct {
	guard  *Guard
	stores store.Provider
	tx     store.TxRunner
}

func NewCommentService(stores store.Provider, tx store.TxRunner) CommentService {
	return &commentService{
		guard:  NewGuard(stores),
		stores: stores,
		tx:     tx,
	}
}

func (s *commentService) List(ctx context.Context, actor *model.Actor, taskID int64) ([]model.Comment, error) {
	task, err := s.guard.Task(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	comments, err := s.stores.Comments().ListByTask(ctx, task.ID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Add(ctx context.Context, actor *model.Actor, taskID int64, content string) (*model.Comment, error) {
	normalized, err := normalizeContent(content)
	if err != nil {
		return nil, err
	}

	var created *model.Comment
	err = s.tx.WithTx(ctx, func(stores store.Provider) error {
		task, err := NewGuard(stores).Task(ctx, actor, taskID)
		if err != nil {
			return err
		}

		comment := &model.Comment{
			ID:       id.New(),
			TaskID:   task.ID,
			AuthorID: &actor.ID,
			Content:  normalized,
		}
		if err := stores.Comments().Create(ctx, comment); err != nil {
			return fmt.Errorf("creating comment: %w", err)
		}
		created = comment
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "comment added",
		"comment_id", created.ID,
		"task_id", taskID,
		"actor_id", actor.ID,
	)
	return created, nil
}

func (s *commentService) Update(ctx context.Context, actor *model.Actor, commentID int64, content string) (*model.Comment, error) {
	normalized, err := normalizeContent(content)
	if err != nil {
		return nil, err
	}

	var updated *model.Comment
	err = s.tx.WithTx(ctx, func(stores store.Provider) error {
		comment, err := NewGuard(stores).Comment(ctx, actor, commentID)
		if err != nil {
			return err
		}

		comment.Content = normalized
		if err := stores.Comments().Update(ctx, comment); err != nil {
			return fmt.Errorf("updating comment: %w", err)
		}
		updated = comment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
