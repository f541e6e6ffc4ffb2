package http

import (
	"errors"
	"net/http"

	"unvaultd/pkg/logger"
	"unvaultd/pkg/middleware"
	"unvaultd/pkg/oauth"
	"unvaultd/pkg/session"
	"unvaultd/services/auth/internal/entity"
	"unvaultd/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase   usecase.AuthUseCase
	sessions      *session.Store
	provider      oauth.Provider
	publicSiteURL string
	logger        *logger.Logger
}

func NewAuthHandler(
	authUseCase usecase.AuthUseCase,
	sessions *session.Store,
	provider oauth.Provider,
	publicSiteURL string,
	logger *logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		sessions:      sessions,
		provider:      provider,
		publicSiteURL: publicSiteURL,
		logger:        logger,
	}
}

type SignUpRequest struct {
	FullName   string `json:"full_name" form:"full_name" binding:"required,max=50"`
	Email      string `json:"email" form:"email" binding:"required,email"`
	Password   string `json:"password" form:"password" binding:"required,min=6"`
	RedirectTo string `json:"redirect_to" form:"redirect_to"`
}

type SignInRequest struct {
	Email      string `json:"email" form:"email" binding:"required,email"`
	Password   string `json:"password" form:"password" binding:"required"`
	RedirectTo string `json:"redirect_to" form:"redirect_to"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type MeResponse struct {
	User        *entity.User `json:"user"`
	DisplayName string       `json:"display_name"`
}

// SignUp godoc
// @Summary      Create a member account
// @Description  Register with full name, email and password. Sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignUpRequest true "Registration data"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authUseCase.SignUp(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.startSession(c, http.StatusCreated, user, token, req.RedirectTo)
}

// SignIn godoc
// @Summary      Sign in with email and password
// @Description  Authenticate a member, return a JWT and set the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authUseCase.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.startSession(c, http.StatusOK, user, token, req.RedirectTo)
}

// SignOut godoc
// @Summary      Sign out
// @Description  Clear the session cookie and the provider session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Success      303
// @Router       /sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.logger.Warn("Failed to clear session: %v", err)
	}
	if err := h.provider.Logout(c.Writer, c.Request); err != nil {
		h.logger.Debug("No provider session to clear: %v", err)
	}

	if middleware.WantsHTML(c) {
		c.Redirect(http.StatusSeeOther, middleware.SignInPath)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// Me godoc
// @Summary      Get the signed-in member
// @Description  Current member with a resolved display name
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  MeResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.authUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{User: user, DisplayName: user.DisplayName()})
}

func (h *AuthHandler) startSession(c *gin.Context, status int, user *entity.User, token, redirectTo string) {
	if err := h.sessions.SetToken(c.Writer, c.Request, token); err != nil {
		h.logger.Error("Failed to save session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	if middleware.WantsHTML(c) {
		c.Redirect(http.StatusSeeOther, oauth.SafePath(redirectTo))
		return
	}
	c.JSON(status, AuthResponse{Token: token, User: user})
}
