package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/student-council/goodness-api/internal/config"
	"github.com/student-council/goodness-api/internal/models"
	"github.com/student-council/goodness-api/internal/store"
)

const (
	TokenCookieName = "auth_token"
	TokenDuration   = 24 * time.Hour
)

type AuthHandler struct {
	cfg   *config.Config
	store *store.Store
}

func NewAuthHandler(cfg *config.Config, store *store.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: store}
}

// AuthInput is embedded in every request struct that needs a session. The
// guards below read the token out of the raw Cookie header.
type AuthInput struct {
	Cookie string `header:"Cookie" doc:"Session cookie"`
}

func (h *AuthHandler) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func sessionCookie(token string) http.Cookie {
	return http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func tokenFromCookieHeader(cookieHeader string) (string, error) {
	header := http.Header{}
	header.Add("Cookie", cookieHeader)
	request := http.Request{Header: header}
	cookie, err := request.Cookie(TokenCookieName)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// Authorize validates the session carried in the Cookie header and returns
// the authenticated user id. It never touches any entity.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) (uint, error) {
	tokenString, err := tokenFromCookieHeader(cookieHeader)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, huma.Error401Unauthorized("Unauthorized: invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, huma.Error401Unauthorized("Unauthorized: invalid token claims")
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, huma.Error401Unauthorized("Unauthorized: invalid token claims")
	}

	return uint(userIDFloat), nil
}

// AuthorizeUser is the "must be authenticated" guard: it resolves the session
// to a live user row.
func (h *AuthHandler) AuthorizeUser(ctx context.Context, cookieHeader string) (*models.User, error) {
	userID, err := h.Authorize(ctx, cookieHeader)
	if err != nil {
		return nil, err
	}

	user, err := h.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error401Unauthorized("Unauthorized")
		}
		return nil, huma.Error500InternalServerError("Failed to load user")
	}
	return user, nil
}

// AuthorizeAdmin is the "must be admin" guard. The role is checked against
// the user row, not the token, so demotions take effect immediately.
func (h *AuthHandler) AuthorizeAdmin(ctx context.Context, cookieHeader string) (*models.User, error) {
	user, err := h.AuthorizeUser(ctx, cookieHeader)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, huma.Error403Forbidden("Forbidden")
	}
	return user, nil
}

type LoginRequest struct {
	Body struct {
		Username string `json:"username" doc:"Username" required:"true"`
		Password string `json:"password" doc:"Password" required:"true"`
	}
}

type LoginResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      models.User
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	user, err := h.store.GetUserByUsername(ctx, input.Body.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error401Unauthorized("Incorrect username or password")
		}
		return nil, huma.Error500InternalServerError("Failed to load user")
	}

	if !VerifyPassword(input.Body.Password, user.Password) {
		return nil, huma.Error401Unauthorized("Incorrect username or password")
	}

	token, err := h.GenerateToken(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	return &LoginResponse{
		SetCookie: sessionCookie(token),
		Body:      *user,
	}, nil
}

type LogoutRequest struct {
	AuthInput
}

type LogoutResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}

func (h *AuthHandler) HandleLogout(ctx context.Context, input *LogoutRequest) (*LogoutResponse, error) {
	if _, err := h.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	res := &LogoutResponse{
		SetCookie: http.Cookie{
			Name:     TokenCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		},
	}
	res.Body.Message = "Logged out"
	return res, nil
}

type MeRequest struct {
	AuthInput
}

type MeResponse struct {
	Body models.User
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *MeRequest) (*MeResponse, error) {
	user, err := h.AuthorizeUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	return &MeResponse{Body: *user}, nil
}

type SignupRequest struct {
	Body struct {
		Username      string  `json:"username" doc:"Unique username" required:"true" minLength:"1"`
		Password      string  `json:"password" doc:"Password" required:"true" minLength:"1"`
		FirstName     string  `json:"firstName" doc:"First name" required:"true"`
		LastName      string  `json:"lastName" doc:"Last name" required:"true"`
		ClassLevel    *string `json:"classLevel,omitempty" doc:"Class label, e.g. M.1/1"`
		StudentNumber *int    `json:"studentNumber,omitempty" doc:"Student number"`
	}
}

type SignupResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      models.User
}

// HandleSignup registers a new student account and logs it in. The role is
// always student here; admins are created by seeding or by an admin edit.
func (h *AuthHandler) HandleSignup(ctx context.Context, input *SignupRequest) (*SignupResponse, error) {
	if _, err := h.store.GetUserByUsername(ctx, input.Body.Username); err == nil {
		return nil, huma.Error409Conflict("Username already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error500InternalServerError("Failed to check username")
	}

	hashed, err := HashPassword(input.Body.Password)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash password")
	}

	user := models.User{
		Username:      input.Body.Username,
		Password:      hashed,
		Role:          models.RoleStudent,
		FirstName:     input.Body.FirstName,
		LastName:      input.Body.LastName,
		ClassLevel:    input.Body.ClassLevel,
		StudentNumber: input.Body.StudentNumber,
	}
	if err := h.store.CreateUser(ctx, &user); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create user")
	}

	token, err := h.GenerateToken(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	return &SignupResponse{
		SetCookie: sessionCookie(token),
		Body:      user,
	}, nil
}
