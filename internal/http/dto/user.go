package dto

import (
	"strconv"
	"time"

	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/service"
)

type CreateUserRequest struct {
	OrganizationID *int64 `json:"organization_id,string,omitempty"`
	Email          string `json:"email" binding:"required,email"`
}

func (r *CreateUserRequest) ToInput() service.CreateUserInput {
	return service.CreateUserInput{
		Email:          r.Email,
		OrganizationID: r.OrganizationID,
	}
}

type UserResponse struct {
	CreatedAt      time.Time `json:"created_at"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	Email          string    `json:"email"`
	ID             string    `json:"id"`
	IsActive       bool      `json:"is_active"`
	IsStaff        bool      `json:"is_staff"`
}

func ToUserResponse(u *model.User) *UserResponse {
	resp := &UserResponse{
		ID:        strconv.FormatInt(u.ID, 10),
		Email:     u.Email,
		IsActive:  u.IsActive,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
	if u.OrganizationID != nil {
		orgID := strconv.FormatInt(*u.OrganizationID, 10)
		resp.OrganizationID = &orgID
	}
	return resp
}
