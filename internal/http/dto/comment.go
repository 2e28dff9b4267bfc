package dto

import (
	"time"

	"planline.app/api-server/internal/model"
)

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentResponse struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	AuthorID  *string   `json:"author_id,omitempty"`
	Content   string    `json:"content"`
	ID        int64     `json:"id,string"`
	TaskID    int64     `json:"task_id,string"`
}

func ToCommentResponse(c *model.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		TaskID:    c.TaskID,
		AuthorID:  formatID(c.AuthorID),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToCommentResponses(comments []model.Comment) []CommentResponse {
	result := make([]CommentResponse, len(comments))
	for i := range comments {
		result[i] = *ToCommentResponse(&comments[i])
	}
	return result
}
