package models

import (
	"errors"
	"strconv"
	"strings"
)

// Validation errors double as the exact status text shown to the user, so
// they are full Italian sentences rather than lowercase error strings.
var (
	ErrMissingFields      = errors.New("Compila tutti i campi obbligatori.")
	ErrPasswordTooShort   = errors.New("Password troppo corta (minimo 6 caratteri).")
	ErrInvalidFollowers   = errors.New("Follower non validi.")
	ErrMissingCredentials = errors.New("Inserisci email e password.")
	ErrMissingContact     = errors.New("Compila tutti i campi.")
)

// SignupForm carries the raw text the user typed into the registration form.
// Followers and Profiles stay as text until Normalize parses them.
type SignupForm struct {
	Email     string
	Password  string
	Platform  string
	Username  string
	Followers string
	Profiles  string
}

// SignupRequest is the normalized signup payload sent to the server.
type SignupRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	MainPlatform  string `json:"main_platform"`
	Username      string `json:"username"`
	Followers     int64  `json:"followers"`
	ProfilesCount int    `json:"profiles_count"`
}

// Normalize validates the form and produces the request payload. Rules:
// email, password and username must be non-empty; password length at least 6;
// followers must parse as a non-negative number (empty counts as zero);
// profiles is coerced to 1 when empty, unparseable, zero or negative.
// On any failure the zero request and the rule's error are returned and no
// network payload is produced.
func (f SignupForm) Normalize() (SignupRequest, error) {
	email := strings.TrimSpace(f.Email)
	username := strings.TrimSpace(f.Username)

	if email == "" || f.Password == "" || username == "" {
		return SignupRequest{}, ErrMissingFields
	}
	if len(f.Password) < 6 {
		return SignupRequest{}, ErrPasswordTooShort
	}

	followersText := strings.TrimSpace(f.Followers)
	if followersText == "" {
		followersText = "0"
	}
	followers, err := strconv.ParseInt(followersText, 10, 64)
	if err != nil || followers < 0 {
		return SignupRequest{}, ErrInvalidFollowers
	}

	profiles := 1
	if p, err := strconv.Atoi(strings.TrimSpace(f.Profiles)); err == nil && p > 0 {
		profiles = p
	}

	return SignupRequest{
		Email:         email,
		Password:      f.Password,
		MainPlatform:  strings.TrimSpace(f.Platform),
		Username:      username,
		Followers:     followers,
		ProfilesCount: profiles,
	}, nil
}

// LoginForm carries the raw authentication input.
type LoginForm struct {
	Email    string
	Password string
}

// LoginRequest is the authentication payload sent to the server.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize checks that both credentials are present and trims the email.
func (f LoginForm) Normalize() (LoginRequest, error) {
	if f.Email == "" || f.Password == "" {
		return LoginRequest{}, ErrMissingCredentials
	}
	return LoginRequest{Email: strings.TrimSpace(f.Email), Password: f.Password}, nil
}

// ContactForm carries the contact-page input.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactRequest is the contact payload sent to the server.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize requires every contact field to be non-blank and trims them all.
func (f ContactForm) Normalize() (ContactRequest, error) {
	req := ContactRequest{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return ContactRequest{}, ErrMissingContact
	}
	return req, nil
}
