// Package auth drives login, registration, and the optional
// profile-completion stage that follows a successful registration.
package auth

import (
	"errors"
	"log"
	"strings"
	"sync"

	"krishi/entities"
	"krishi/pkg/api"
	"krishi/pkg/geocode"
	"krishi/pkg/session"
)

// ErrBusy means an attempt is already in flight for this flow value. The
// original UI disables the submit button with a loading flag; callers
// treat this the same way.
var ErrBusy = errors.New("another attempt is in flight")

// FieldErrors maps an input field to its message. A non-empty map blocks
// submission before any network call.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	for _, msg := range fe {
		return msg
	}
	return "invalid form"
}

type LoginForm struct {
	Role        string
	PhoneNumber string
	Email       string
	Password    string
}

type RegisterForm struct {
	Role        string
	Name        string
	PhoneNumber string
	Email       string
	Password    string
}

type Service struct {
	api      api.Client
	sessions *session.Store

	mu       sync.Mutex
	inFlight bool
}

func New(client api.Client, sessions *session.Store) *Service {
	return &Service{api: client, sessions: sessions}
}

func validateLogin(f LoginForm) FieldErrors {
	errs := FieldErrors{}
	if f.Role == entities.RoleFarmer {
		if blank(f.PhoneNumber) {
			errs["phoneNumber"] = "Please enter your phone number"
		}
	} else {
		if blank(f.Email) {
			errs["email"] = "Please enter your email"
		}
	}
	if blank(f.Password) {
		errs["password"] = "Please enter your password"
	}
	return errs
}

// Login validates the role-appropriate identifier and password, performs
// at most one call, and on success writes the returned profile into the
// session store. Never retries.
func (s *Service) Login(f LoginForm) (entities.User, error) {
	if errs := validateLogin(f); len(errs) > 0 {
		return entities.User{}, errs
	}
	if !s.begin() {
		return entities.User{}, ErrBusy
	}
	defer s.end()

	var (
		u   entities.User
		err error
	)
	if f.Role == entities.RoleFarmer {
		u, err = s.api.FarmerLogin(f.PhoneNumber, f.Password)
	} else {
		u, err = s.api.ExpertLogin(f.Email, f.Password)
	}
	if err != nil {
		return entities.User{}, err
	}
	s.sessions.Set(u)
	return u, nil
}

func validateRegister(f RegisterForm) FieldErrors {
	errs := FieldErrors{}
	if blank(f.Name) {
		errs["name"] = "Please enter your name"
	}
	if f.Role == entities.RoleFarmer {
		if blank(f.PhoneNumber) {
			errs["phoneNumber"] = "Please enter your phone number"
		}
	} else {
		if blank(f.Email) {
			errs["email"] = "Please enter your email"
		}
	}
	if blank(f.Password) {
		errs["password"] = "Please enter your password"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters long"
	}
	return errs
}

// Register mirrors Login plus the name and password-length rules. The
// created profile becomes the session; the caller may then run
// CompleteProfile, or skip it; both paths end in the same place.
func (s *Service) Register(f RegisterForm) (entities.User, error) {
	if errs := validateRegister(f); len(errs) > 0 {
		return entities.User{}, errs
	}
	if !s.begin() {
		return entities.User{}, ErrBusy
	}
	defer s.end()

	req := api.RegisterRequest{
		Name:        f.Name,
		PhoneNumber: f.PhoneNumber,
		Email:       f.Email,
		Password:    f.Password,
		Role:        f.Role,
	}
	var (
		u   entities.User
		err error
	)
	if f.Role == entities.RoleFarmer {
		u, err = s.api.FarmerRegister(req)
	} else {
		u, err = s.api.ExpertRegister(req)
	}
	if err != nil {
		return entities.User{}, err
	}
	s.sessions.Set(u)
	return u, nil
}

// CompleteProfile applies the optional post-registration stage: a photo
// URI and a resolved location. Empty values mean the user skipped that
// part. Location resolution never fails the flow; placeholders are
// stored instead (see pkg/geocode).
func (s *Service) CompleteProfile(photoURI string, loc geocode.Locator, rev geocode.Reverser) {
	p := session.Patch{}
	if photoURI != "" {
		p.ProfilePic = &photoURI
	}
	if loc != nil {
		resolved := geocode.Resolve(loc, rev)
		p.Location = &resolved
		s.sessions.SaveLocation(resolved)
	}
	if p.ProfilePic != nil || p.Location != nil {
		s.sessions.Update(p)
	}
}

func (s *Service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

func (s *Service) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// Logout clears the session and its persisted copies.
func (s *Service) Logout() {
	s.sessions.Reset()
	log.Printf("[auth] session cleared")
}

func blank(v string) bool { return strings.TrimSpace(v) == "" }
