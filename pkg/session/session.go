package session

import (
	"errors"
	"net/http"

	"unvaultd/pkg/config"

	"github.com/gorilla/sessions"
)

const (
	CookieName = "unvaultd_session"
	MaxAge     = 86400 * 30

	tokenKey    = "token"
	redirectKey = "redirect_to"
)

var ErrNoSession = errors.New("no session")

// Store keeps the signed-in member's token in a signed cookie.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(cfg *config.Config) *Store {
	cookies := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cookies.MaxAge(MaxAge)
	cookies.Options.Path = "/"
	cookies.Options.HttpOnly = true
	cookies.Options.Secure = cfg.CookieSecure
	cookies.Options.SameSite = http.SameSiteLaxMode

	return &Store{cookies: cookies}
}

// Cookies exposes the underlying gorilla store so the OAuth flow can share it.
func (s *Store) Cookies() sessions.Store {
	return s.cookies
}

// SetToken signs the member in. Any stashed post-login target is dropped in
// the same write, since this cookie replaces whatever PopRedirect saved.
func (s *Store) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	sess, err := s.cookies.Get(r, CookieName)
	if err != nil && sess == nil {
		return err
	}
	sess.Values[tokenKey] = token
	delete(sess.Values, redirectKey)
	return sess.Save(r, w)
}

// Token implements middleware.TokenSource.
func (s *Store) Token(r *http.Request) (string, bool) {
	sess, err := s.cookies.Get(r, CookieName)
	if err != nil || sess == nil {
		return "", false
	}
	token, ok := sess.Values[tokenKey].(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (s *Store) SetRedirect(w http.ResponseWriter, r *http.Request, path string) error {
	sess, err := s.cookies.Get(r, CookieName)
	if err != nil && sess == nil {
		return err
	}
	sess.Values[redirectKey] = path
	return sess.Save(r, w)
}

// PopRedirect returns the stashed post-login target and removes it.
func (s *Store) PopRedirect(w http.ResponseWriter, r *http.Request) string {
	sess, err := s.cookies.Get(r, CookieName)
	if err != nil || sess == nil {
		return ""
	}
	path, _ := sess.Values[redirectKey].(string)
	if path != "" {
		delete(sess.Values, redirectKey)
		_ = sess.Save(r, w)
	}
	return path
}

func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.cookies.Get(r, CookieName)
	if sess == nil {
		if err == nil {
			err = ErrNoSession
		}
		return err
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
