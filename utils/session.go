package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

const SessionCookieName = "session"

// Session is the per-request view of the signed session cookie. It is
// resolved once at the request boundary and handed to handlers.
type Session struct {
	User    string
	flashes []string
	dirty   bool
}

func (s *Session) LoggedIn() bool {
	return s.User != ""
}

func (s *Session) SetUser(username string) {
	s.User = username
	s.dirty = true
}

// ClearUser removes the user; a session without one is left untouched.
func (s *Session) ClearUser() bool {
	if s.User == "" {
		return false
	}
	s.User = ""
	s.dirty = true
	return true
}

func (s *Session) Flash(message string) {
	s.flashes = append(s.flashes, message)
	s.dirty = true
}

// PopFlashes returns the pending flash messages and clears them.
func (s *Session) PopFlashes() []string {
	if len(s.flashes) == 0 {
		return nil
	}
	flashes := s.flashes
	s.flashes = nil
	s.dirty = true
	return flashes
}

func (s *Session) Modified() bool {
	return s.dirty
}

type sessionClaims struct {
	User    string   `json:"user,omitempty"`
	Flashes []string `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// SessionStore reads and writes sessions as HS256-signed cookies.
type SessionStore struct {
	key    []byte
	secure bool
}

func NewSessionStore(secret string, secure bool) *SessionStore {
	return &SessionStore{key: []byte(secret), secure: secure}
}

// Load returns the session carried by r. A missing, malformed or
// badly signed cookie yields an empty session.
func (s *SessionStore) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return &Session{}
	}

	claims, err := s.parse(cookie.Value)
	if err != nil {
		log.Printf("Discarding session cookie: %v", err)
		return &Session{dirty: true}
	}
	return &Session{User: claims.User, flashes: claims.Flashes}
}

// Save writes sess to w, expiring the cookie when the session is empty.
func (s *SessionStore) Save(w http.ResponseWriter, sess *Session) error {
	if sess.User == "" && len(sess.flashes) == 0 {
		http.SetCookie(w, s.cookie("", -1))
		return nil
	}

	value, err := s.sign(sess)
	if err != nil {
		return err
	}
	http.SetCookie(w, s.cookie(value, 0))
	return nil
}

func (s *SessionStore) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *SessionStore) sign(sess *Session) (string, error) {
	claims := &sessionClaims{User: sess.User, Flashes: sess.flashes}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

func (s *SessionStore) parse(value string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, errors.New("invalid session signature")
		}
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session")
	}
	return claims, nil
}
