// Package cropcal holds the farmer's crop calendars: a read-mostly list
// re-fetched on every screen focus, filtered client-side by status, with
// a local-only optimistic delete.
package cropcal

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"krishi/entities"
	"krishi/pkg/api"
	"krishi/pkg/session"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"    // PENDING
	FilterCompleted Filter = "completed" // COMPLETED
)

var ErrNotFound = errors.New("crop calendar not found")

type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	for _, msg := range fe {
		return msg
	}
	return "invalid form"
}

type Service struct {
	api      api.Client
	sessions *session.Store

	mu   sync.Mutex
	list []entities.CropCalendar
}

func New(client api.Client, sessions *session.Store) *Service {
	return &Service{api: client, sessions: sessions}
}

// Refresh replaces the held list with a fresh fetch. Called on every
// visit to the calendar screen; nothing is cached across visits.
func (s *Service) Refresh() error {
	out, err := s.api.CropCalendars(s.sessions.Token())
	if err != nil {
		return err
	}
	s.mu.Lock()
	// Detached copy: Delete rewrites the held list in place, which must
	// never reach into the slice the client returned.
	s.list = slices.Clone(out)
	s.mu.Unlock()
	return nil
}

// Calendars returns the held list narrowed by the filter, order
// preserved. Filtering is purely client-side.
func (s *Service) Calendars(f Filter) []entities.CropCalendar {
	s.mu.Lock()
	defer s.mu.Unlock()
	var want string
	switch f {
	case FilterActive:
		want = entities.StatusPending
	case FilterCompleted:
		want = entities.StatusCompleted
	default:
		out := make([]entities.CropCalendar, len(s.list))
		copy(out, s.list)
		return out
	}
	out := make([]entities.CropCalendar, 0, len(s.list))
	for _, cal := range s.list {
		if cal.Status == want {
			out = append(out, cal)
		}
	}
	return out
}

// Stats counts active (PENDING) and completed entries in the held list.
func (s *Service) Stats() (active, completed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cal := range s.list {
		switch cal.Status {
		case entities.StatusPending:
			active++
		case entities.StatusCompleted:
			completed++
		}
	}
	return
}

// Delete removes the entry from the held list immediately. Local-only by
// design: the platform exposes no delete endpoint, so the server copy
// reappears on the next Refresh.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cal := range s.list {
		if cal.ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Get finds an entry in the held list, refreshing once when the list has
// not been fetched yet or the id is unknown.
func (s *Service) Get(id string) (entities.CropCalendar, error) {
	if cal, ok := s.find(id); ok {
		return cal, nil
	}
	if err := s.Refresh(); err != nil {
		return entities.CropCalendar{}, err
	}
	if cal, ok := s.find(id); ok {
		return cal, nil
	}
	return entities.CropCalendar{}, ErrNotFound
}

func (s *Service) find(id string) (entities.CropCalendar, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cal := range s.list {
		if cal.ID == id {
			return cal, true
		}
	}
	return entities.CropCalendar{}, false
}

func ValidateCreate(cal entities.CropCalendar) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(cal.ProjectName) == "" {
		errs["projectName"] = "Project name is required"
	}
	if strings.TrimSpace(cal.CropName) == "" {
		errs["cropName"] = "Crop name is required"
	}
	if cal.CropType == "" {
		errs["cropType"] = "Please select a crop type"
	}
	if cal.Season == "" {
		errs["season"] = "Please select a season"
	}
	if strings.TrimSpace(cal.Location) == "" {
		errs["location"] = "Location is required"
	}
	if cal.FieldSize <= 0 {
		errs["fieldSize"] = "Please enter a valid field size"
	}
	return errs
}

// Create validates and posts a new calendar. New entries default to
// PENDING; the server assigns the id.
func (s *Service) Create(cal entities.CropCalendar) error {
	if errs := ValidateCreate(cal); len(errs) > 0 {
		return errs
	}
	if cal.Status == "" {
		cal.Status = entities.StatusPending
	}
	return s.api.CreateCropCalendar(s.sessions.Token(), cal)
}
