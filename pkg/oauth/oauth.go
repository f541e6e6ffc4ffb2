package oauth

import (
	"net/http"
	"strings"

	"unvaultd/pkg/config"
	"unvaultd/pkg/session"

	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

// Provider is the slice of gothic the auth handlers rely on.
type Provider interface {
	Begin(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request) (goth.User, error)
	Logout(w http.ResponseWriter, r *http.Request) error
}

type gothicProvider struct{}

// Setup registers the Google provider and points gothic at the shared cookie store.
// The provider name is read from the "provider" query parameter, which the
// router fills in from the path.
func Setup(cfg *config.Config, store *session.Store) Provider {
	callback := strings.TrimRight(cfg.PublicSiteURL, "/")
	if callback == "" {
		callback = "http://localhost:" + cfg.ServerPort
	}
	callback += "/auth/google/callback"

	goth.UseProviders(google.New(cfg.GoogleKey, cfg.GoogleSecret, callback, "email", "profile"))
	gothic.Store = store.Cookies()

	return gothicProvider{}
}

func (gothicProvider) Begin(w http.ResponseWriter, r *http.Request) {
	gothic.BeginAuthHandler(w, r)
}

func (gothicProvider) Complete(w http.ResponseWriter, r *http.Request) (goth.User, error) {
	return gothic.CompleteUserAuth(w, r)
}

func (gothicProvider) Logout(w http.ResponseWriter, r *http.Request) error {
	return gothic.Logout(w, r)
}

// WithProvider copies the provider path segment into the query string,
// where gothic.GetProviderName looks for it first.
func WithProvider(r *http.Request, provider string) *http.Request {
	q := r.URL.Query()
	q.Set("provider", provider)
	r.URL.RawQuery = q.Encode()
	return r
}
