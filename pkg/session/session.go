// Package session holds the single authenticated user for the lifetime of
// the app. Every mutation is mirrored to local storage under the key
// "userData" (write-through). Storage failures are logged and swallowed:
// the in-memory state always wins and the caller is never blocked.
package session

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"krishi/entities"
	"krishi/pkg/localstore"
)

const (
	keyUserData = "userData"
	keyLocation = "location"
)

// Patch carries the fields Update may shallow-merge into the current
// session. Nil fields are left untouched.
type Patch struct {
	Name       *string
	Email      *string
	ProfilePic *string
	Location   *string
	Token      *string
}

type Store struct {
	mu      sync.Mutex
	storage localstore.Store
	user    *entities.User
}

func NewStore(storage localstore.Store) *Store {
	return &Store{storage: storage}
}

// Set replaces the current session and persists it. No merge semantics:
// re-login overwrites whatever was there.
func (s *Store) Set(u entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.persistLocked()
}

// Update shallow-merges into the current session. A missing session makes
// this a silent no-op, not an error.
func (s *Store) Update(p Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	if p.Name != nil {
		s.user.Name = *p.Name
	}
	if p.Email != nil {
		s.user.Email = *p.Email
	}
	if p.ProfilePic != nil {
		s.user.ProfilePic = *p.ProfilePic
	}
	if p.Location != nil {
		s.user.Location = *p.Location
	}
	if p.Token != nil {
		s.user.Token = *p.Token
	}
	s.persistLocked()
}

// Reset clears the session and removes the persisted copy together with
// the auxiliary last-known-location key.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.storage.Remove(keyUserData); err != nil {
		log.Printf("[session] remove %s: %v", keyUserData, err)
	}
	if err := s.storage.Remove(keyLocation); err != nil {
		log.Printf("[session] remove %s: %v", keyLocation, err)
	}
}

// Load rehydrates the session from storage. Called once at startup. A
// read or deserialization failure logs and leaves the session nil.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok, err := s.storage.Get(keyUserData)
	if err != nil {
		log.Printf("[session] load: %v", err)
		return
	}
	if !ok {
		return
	}
	var u entities.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("[session] load: bad stored session: %v", err)
		return
	}
	s.user = &u
}

// Current returns a copy of the session, if any.
func (s *Store) Current() (entities.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return entities.User{}, false
	}
	return *s.user, true
}

// Token returns the session token ready for the x-access-token header.
// Stored tokens may arrive JSON-quoted from the server, so embedded
// quote characters are stripped.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return CleanToken(s.user.Token)
}

func CleanToken(tok string) string {
	return strings.ReplaceAll(tok, `"`, "")
}

func (s *Store) persistLocked() {
	b, err := json.Marshal(s.user)
	if err != nil {
		log.Printf("[session] marshal: %v", err)
		return
	}
	if err := s.storage.Set(keyUserData, string(b)); err != nil {
		log.Printf("[session] persist: %v", err)
	}
}

// SaveLocation records the last resolved "City, Country" string. Best
// effort, like the rest of persistence.
func (s *Store) SaveLocation(loc string) {
	b, _ := json.Marshal(loc)
	if err := s.storage.Set(keyLocation, string(b)); err != nil {
		log.Printf("[session] persist location: %v", err)
	}
}
