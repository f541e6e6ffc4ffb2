package http

import (
	"net/http"

	"unvaultd/pkg/oauth"
	"unvaultd/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BeginOAuth godoc
// @Summary      Start OAuth sign-in
// @Description  Stores redirect_to in the session and redirects to the provider consent page
// @Tags         oauth
// @Param        provider     path   string  true   "Provider name"  Enums(google)
// @Param        redirect_to  query  string  false  "Local path to return to after sign-in"
// @Success      307
// @Router       /auth/{provider} [get]
func (h *AuthHandler) BeginOAuth(c *gin.Context) {
	target := oauth.SafePath(c.Query("redirect_to"))
	if err := h.sessions.SetRedirect(c.Writer, c.Request, target); err != nil {
		h.logger.Warn("Failed to stash oauth redirect: %v", err)
	}

	h.provider.Begin(c.Writer, oauth.WithProvider(c.Request, c.Param("provider")))
}

// OAuthCallback godoc
// @Summary      OAuth callback
// @Description  Exchanges the authorization code, links or creates the member and redirects to the stored target. A missing or invalid code redirects without a session.
// @Tags         oauth
// @Param        provider  path   string  true   "Provider name"  Enums(google)
// @Param        code      query  string  false  "Authorization code"
// @Success      302
// @Router       /auth/{provider}/callback [get]
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	provider := c.Param("provider")
	target := h.sessions.PopRedirect(c.Writer, c.Request)
	redirectURL := oauth.RedirectURL(c.Request, h.publicSiteURL, target)

	gothUser, err := h.provider.Complete(c.Writer, oauth.WithProvider(c.Request, provider))
	if err != nil {
		h.logger.Warn("OAuth code exchange failed for %s: %v", provider, err)
		c.Redirect(http.StatusFound, redirectURL)
		return
	}

	_, token, err := h.authUseCase.CompleteOAuth(c.Request.Context(), usecase.OAuthIdentity{
		Provider:       gothUser.Provider,
		ProviderUserID: gothUser.UserID,
		Email:          gothUser.Email,
		Name:           gothUser.Name,
		AvatarURL:      gothUser.AvatarURL,
	})
	if err != nil {
		h.logger.Warn("OAuth sign-in failed for %s: %v", provider, err)
		c.Redirect(http.StatusFound, redirectURL)
		return
	}

	if err := h.sessions.SetToken(c.Writer, c.Request, token); err != nil {
		h.logger.Error("Failed to save session: %v", err)
	}
	c.Redirect(http.StatusFound, redirectURL)
}
