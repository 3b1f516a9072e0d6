package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/student-council/goodness-api/internal/auth"
	"github.com/student-council/goodness-api/internal/models"
	"github.com/student-council/goodness-api/internal/store"
)

type UserHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
}

func NewUserHandler(store *store.Store, authHandler *auth.AuthHandler) *UserHandler {
	return &UserHandler{store: store, authHandler: authHandler}
}

type ListUsersRequest struct {
	auth.AuthInput
}

type ListUsersResponse struct {
	Body []models.User
}

func (h *UserHandler) HandleList(ctx context.Context, input *ListUsersRequest) (*ListUsersResponse, error) {
	if _, err := h.authHandler.AuthorizeAdmin(ctx, input.Cookie); err != nil {
		return nil, err
	}

	users, err := h.store.ListUsers(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users")
	}
	return &ListUsersResponse{Body: users}, nil
}

type UpdateUserRequest struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Username      *string `json:"username,omitempty" doc:"New username"`
		Role          *string `json:"role,omitempty" enum:"student,admin" doc:"Access role"`
		FirstName     *string `json:"firstName,omitempty"`
		LastName      *string `json:"lastName,omitempty"`
		ClassLevel    *string `json:"classLevel,omitempty"`
		StudentNumber *int    `json:"studentNumber,omitempty"`
		Points        *int    `json:"points,omitempty" minimum:"0" doc:"Explicit point balance override"`
	}
}

type UpdateUserResponse struct {
	Body models.User
}

// HandleUpdate applies a partial admin edit to a user. This is the only path
// besides the review workflow allowed to touch the point balance.
func (h *UserHandler) HandleUpdate(ctx context.Context, input *UpdateUserRequest) (*UpdateUserResponse, error) {
	if _, err := h.authHandler.AuthorizeAdmin(ctx, input.Cookie); err != nil {
		return nil, err
	}

	user, err := h.store.UpdateUser(ctx, input.ID, store.UserUpdate{
		Username:      input.Body.Username,
		Role:          input.Body.Role,
		FirstName:     input.Body.FirstName,
		LastName:      input.Body.LastName,
		ClassLevel:    input.Body.ClassLevel,
		StudentNumber: input.Body.StudentNumber,
		Points:        input.Body.Points,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update user")
	}

	return &UpdateUserResponse{Body: *user}, nil
}
