package service

import (
	"context"
	"errors"
	"fmt"

	"planline.app/api-server/common"
	"planline.app/api-server/common/id"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/store"
)

type OrganizationService interface {
	Create(ctx context.Context, name string, slug *string, contactEmail string) (*model.Organization, error)
	Get(ctx context.Context, id int64) (*model.Organization, error)
}

type organizationService struct {
	stores store.Provider
	tx     store.TxRunner
}

func NewOrganizationService(stores store.Provider, tx store.TxRunner) OrganizationService {
	return &organizationService{
		stores: stores,
		tx:     tx,
	}
}

func (s *organizationService) Create(ctx context.Context, name string, slug *string, contactEmail string) (*model.Organization, error) {
	var createdOrg *model.Organization

	err := s.tx.WithTx(ctx, func(stores store.Provider) error {
		orgStore := stores.Organizations()

		finalSlug, err := s.ensureOrgSlug(ctx, orgStore, name, slug)
		if err != nil {
			return err
		}

		org := &model.Organization{
			ID:           id.New(),
			Name:         name,
			Slug:         finalSlug,
			ContactEmail: contactEmail,
		}

		if err := orgStore.Create(ctx, org); err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		createdOrg = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	return createdOrg, nil
}

func (s *organizationService) Get(ctx context.Context, orgID int64) (*model.Organization, error) {
	org, err := s.stores.Organizations().GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, rejectNotFound("organization")
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) ensureOrgSlug(ctx context.Context, orgStore store.OrganizationStore, name string, slug *string) (string, error) {
	input := name
	if slug != nil && *slug != "" {
		input = *slug
	}

	base, err := common.Slugify(input, "org")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	// Fast path
	if _, err := orgStore.GetBySlug(ctx, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := orgStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}
