package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"planline.app/api-server/common/id"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/store"
)

var ErrEmailTaken = errors.New("email already in use")

type CreateUserInput struct {
	Email          string
	OrganizationID *int64
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*model.User, error)
	Get(ctx context.Context, userID int64) (*model.User, error)
	// Me returns the stored profile behind an actor.
	Me(ctx context.Context, actor *model.Actor) (*model.User, error)
}

type userService struct {
	stores store.Provider
	tx     store.TxRunner
}

func NewUserService(stores store.Provider, tx store.TxRunner) UserService {
	return &userService{
		stores: stores,
		tx:     tx,
	}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	var created *model.User

	err := s.tx.WithTx(ctx, func(stores store.Provider) error {
		users := stores.Users()

		if _, err := users.GetByEmail(ctx, input.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking email availability: %w", err)
		}

		if input.OrganizationID != nil {
			if _, err := stores.Organizations().GetByID(ctx, *input.OrganizationID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return rejectNotFound("organization")
				}
				return fmt.Errorf("getting organization: %w", err)
			}
		}

		user := &model.User{
			ID:             id.New(),
			Email:          input.Email,
			OrganizationID: input.OrganizationID,
			IsActive:       true,
		}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user created", "user_id", created.ID, "email", created.Email)
	return created, nil
}

func (s *userService) Get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.stores.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, rejectNotFound("user")
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *userService) Me(ctx context.Context, actor *model.Actor) (*model.User, error) {
	if actor == nil {
		return nil, rejectUnauthenticated()
	}
	return s.Get(ctx, actor.ID)
}
