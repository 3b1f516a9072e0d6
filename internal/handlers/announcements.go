package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/danielgtaylor/huma/v2"
	"github.com/student-council/goodness-api/internal/auth"
	"github.com/student-council/goodness-api/internal/models"
	"github.com/student-council/goodness-api/internal/notifier"
	"github.com/student-council/goodness-api/internal/store"
)

type AnnouncementHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
	notifier    notifier.Notifier
}

func NewAnnouncementHandler(store *store.Store, authHandler *auth.AuthHandler, notifier notifier.Notifier) *AnnouncementHandler {
	return &AnnouncementHandler{store: store, authHandler: authHandler, notifier: notifier}
}

type ListAnnouncementsRequest struct{}

type ListAnnouncementsResponse struct {
	Body []models.Announcement
}

// HandleList is public; the bulletin board is readable without a session.
func (h *AnnouncementHandler) HandleList(ctx context.Context, input *ListAnnouncementsRequest) (*ListAnnouncementsResponse, error) {
	announcements, err := h.store.ListAnnouncements(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list announcements")
	}
	return &ListAnnouncementsResponse{Body: announcements}, nil
}

type CreateAnnouncementRequest struct {
	auth.AuthInput
	Body struct {
		Title    string  `json:"title" doc:"Title of the announcement" required:"true" minLength:"1"`
		Content  string  `json:"content" doc:"Body text" required:"true" minLength:"1"`
		ImageURL *string `json:"imageUrl,omitempty" doc:"Optional image URL"`
	}
}

type CreateAnnouncementResponse struct {
	Body models.Announcement
}

func (h *AnnouncementHandler) HandleCreate(ctx context.Context, input *CreateAnnouncementRequest) (*CreateAnnouncementResponse, error) {
	if _, err := h.authHandler.AuthorizeAdmin(ctx, input.Cookie); err != nil {
		return nil, err
	}

	announcement := models.Announcement{
		Title:    input.Body.Title,
		Content:  input.Body.Content,
		ImageURL: input.Body.ImageURL,
	}
	if err := h.store.CreateAnnouncement(ctx, &announcement); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create announcement")
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyAnnouncement(announcement); err != nil {
			log.Printf("Failed to send announcement notification: %v", err)
			// Notification failures never fail the request
		}
	}

	return &CreateAnnouncementResponse{Body: announcement}, nil
}

type UpdateAnnouncementRequest struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Title    *string `json:"title,omitempty" minLength:"1"`
		Content  *string `json:"content,omitempty" minLength:"1"`
		ImageURL *string `json:"imageUrl,omitempty"`
	}
}

type UpdateAnnouncementResponse struct {
	Body models.Announcement
}

func (h *AnnouncementHandler) HandleUpdate(ctx context.Context, input *UpdateAnnouncementRequest) (*UpdateAnnouncementResponse, error) {
	if _, err := h.authHandler.AuthorizeAdmin(ctx, input.Cookie); err != nil {
		return nil, err
	}

	announcement, err := h.store.UpdateAnnouncement(ctx, input.ID, store.AnnouncementUpdate{
		Title:    input.Body.Title,
		Content:  input.Body.Content,
		ImageURL: input.Body.ImageURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("Announcement not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update announcement")
	}

	return &UpdateAnnouncementResponse{Body: *announcement}, nil
}

type DeleteAnnouncementRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

// HandleDelete hard-deletes an announcement. Deleting an id that no longer
// exists still succeeds.
func (h *AnnouncementHandler) HandleDelete(ctx context.Context, input *DeleteAnnouncementRequest) (*struct{}, error) {
	if _, err := h.authHandler.AuthorizeAdmin(ctx, input.Cookie); err != nil {
		return nil, err
	}

	if err := h.store.DeleteAnnouncement(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete announcement")
	}
	return nil, nil
}
