package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/student-council/goodness-api/internal/auth"
	"github.com/student-council/goodness-api/internal/models"
	"github.com/student-council/goodness-api/internal/notifier"
	"github.com/student-council/goodness-api/internal/store"
)

type GoodnessHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
	notifier    notifier.Notifier
}

func NewGoodnessHandler(store *store.Store, authHandler *auth.AuthHandler, notifier notifier.Notifier) *GoodnessHandler {
	return &GoodnessHandler{store: store, authHandler: authHandler, notifier: notifier}
}

type ListGoodnessRequest struct {
	auth.AuthInput
	UserID uint   `query:"userId" doc:"Filter by owning user (admins only)"`
	Status string `query:"status" doc:"Filter by status: pending, approved or rejected"`
}

type ListGoodnessResponse struct {
	Body []models.GoodnessRecord
}

// HandleList returns goodness records newest-first with the owning user
// joined in. Students are always scoped to their own records; any userId
// filter they supply is ignored. Admins may filter by any user or none.
func (h *GoodnessHandler) HandleList(ctx context.Context, input *ListGoodnessRequest) (*ListGoodnessResponse, error) {
	user, err := h.authHandler.AuthorizeUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var filter store.GoodnessFilter
	if user.IsAdmin() {
		if input.UserID != 0 {
			filter.UserID = &input.UserID
		}
	} else {
		filter.UserID = &user.ID
	}
	if input.Status != "" {
		if input.Status != models.StatusPending && input.Status != models.StatusApproved && input.Status != models.StatusRejected {
			return nil, huma.Error400BadRequest("status must be pending, approved or rejected")
		}
		filter.Status = &input.Status
	}

	records, err := h.store.ListGoodnessRecords(ctx, filter)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list goodness records")
	}
	return &ListGoodnessResponse{Body: records}, nil
}

type CreateGoodnessRequest struct {
	auth.AuthInput
	Body struct {
		Description   string  `json:"description" doc:"What good deed was done" required:"true" minLength:"1"`
		DatePerformed string  `json:"datePerformed" doc:"Calendar date of the deed, YYYY-MM-DD" required:"true"`
		ImageURL      *string `json:"imageUrl,omitempty" doc:"Optional photo evidence URL"`
	}
}

type CreateGoodnessResponse struct {
	Body models.GoodnessRecord
}

// HandleCreate submits a new pending record for the calling student. The
// owner is always the session identity; it cannot be supplied in the body.
func (h *GoodnessHandler) HandleCreate(ctx context.Context, input *CreateGoodnessRequest) (*CreateGoodnessResponse, error) {
	user, err := h.authHandler.AuthorizeUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", input.Body.DatePerformed); err != nil {
		return nil, huma.Error400BadRequest("datePerformed must be a YYYY-MM-DD date")
	}

	record := models.GoodnessRecord{
		UserID:        user.ID,
		Description:   input.Body.Description,
		DatePerformed: input.Body.DatePerformed,
		ImageURL:      input.Body.ImageURL,
		Status:        models.StatusPending,
	}
	if err := h.store.CreateGoodnessRecord(ctx, &record); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create goodness record")
	}

	return &CreateGoodnessResponse{Body: record}, nil
}

type ReviewGoodnessRequest struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Status        string  `json:"status" doc:"Review decision" required:"true" enum:"approved,rejected"`
		PointsAwarded int     `json:"pointsAwarded,omitempty" minimum:"0" doc:"Points to credit on approval"`
		AdminFeedback *string `json:"adminFeedback,omitempty" doc:"Optional feedback for the student"`
	}
}

type ReviewGoodnessResponse struct {
	Body models.GoodnessRecord
}

// HandleReview finalizes a pending record. Approval credits the points to the
// owning user in the same transaction; a record that was already decided
// cannot be reviewed again.
func (h *GoodnessHandler) HandleReview(ctx context.Context, input *ReviewGoodnessRequest) (*ReviewGoodnessResponse, error) {
	if _, err := h.authHandler.AuthorizeAdmin(ctx, input.Cookie); err != nil {
		return nil, err
	}

	record, err := h.store.ReviewGoodnessRecord(ctx, input.ID, input.Body.Status, input.Body.PointsAwarded, input.Body.AdminFeedback)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("Record not found")
		}
		if errors.Is(err, store.ErrAlreadyReviewed) {
			return nil, huma.Error409Conflict("Record has already been reviewed")
		}
		return nil, huma.Error500InternalServerError("Failed to review record")
	}

	if h.notifier != nil {
		owner, err := h.store.GetUser(ctx, record.UserID)
		if err == nil {
			if err := h.notifier.NotifyReview(*record, *owner); err != nil {
				log.Printf("Failed to send review notification: %v", err)
			}
		}
	}

	return &ReviewGoodnessResponse{Body: *record}, nil
}
