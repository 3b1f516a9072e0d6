package handlers

import (
	"context"
	"testing"

	"github.com/student-council/goodness-api/internal/models"
)

func TestHandleListUsers(t *testing.T) {
	env := newTestEnv(t)
	_, studentCookie := env.sessionFor(t, "somchai", models.RoleStudent)
	_, adminCookie := env.sessionFor(t, "head", models.RoleAdmin)

	t.Run("StudentForbidden", func(t *testing.T) {
		input := &ListUsersRequest{}
		input.Cookie = studentCookie

		_, err := env.users.HandleList(context.Background(), input)
		if err == nil {
			t.Fatal("expected error for student caller")
		}
		if status := statusOf(t, err); status != 403 {
			t.Errorf("expected 403, got %d", status)
		}
	})

	t.Run("Admin", func(t *testing.T) {
		input := &ListUsersRequest{}
		input.Cookie = adminCookie

		resp, err := env.users.HandleList(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleList returned error: %v", err)
		}
		if len(resp.Body) != 2 {
			t.Errorf("expected 2 users, got %d", len(resp.Body))
		}
	})
}

func TestHandleUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	student, _ := env.sessionFor(t, "somchai", models.RoleStudent)
	_, adminCookie := env.sessionFor(t, "head", models.RoleAdmin)

	classLevel := "M.2/3"
	points := 25
	input := &UpdateUserRequest{ID: student.ID}
	input.Cookie = adminCookie
	input.Body.ClassLevel = &classLevel
	input.Body.Points = &points

	resp, err := env.users.HandleUpdate(context.Background(), input)
	if err != nil {
		t.Fatalf("HandleUpdate returned error: %v", err)
	}
	if resp.Body.ClassLevel == nil || *resp.Body.ClassLevel != "M.2/3" {
		t.Error("expected class level to be updated")
	}
	if resp.Body.Points != 25 {
		t.Errorf("expected points override to 25, got %d", resp.Body.Points)
	}
	if resp.Body.Username != "somchai" {
		t.Errorf("expected untouched username, got %s", resp.Body.Username)
	}

	t.Run("NotFound", func(t *testing.T) {
		missing := &UpdateUserRequest{ID: 9999}
		missing.Cookie = adminCookie
		missing.Body.Points = &points

		_, err := env.users.HandleUpdate(context.Background(), missing)
		if err == nil {
			t.Fatal("expected error for missing user")
		}
		if status := statusOf(t, err); status != 404 {
			t.Errorf("expected 404, got %d", status)
		}
	})
}
