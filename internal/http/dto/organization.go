package dto

import (
	"time"

	"planline.app/api-server/internal/model"
)

type CreateOrganizationRequest struct {
	Slug         *string `json:"slug,omitempty" binding:"omitempty,min=1,max=255"`
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	ContactEmail string  `json:"contact_email" binding:"required,email"`
}

type OrganizationResponse struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	ID           int64     `json:"id,string"`
}

func ToOrganizationResponse(org *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		ContactEmail: org.ContactEmail,
		CreatedAt:    org.CreatedAt,
		UpdatedAt:    org.UpdatedAt,
	}
}
