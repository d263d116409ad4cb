// Package servicereq submits the three farmer service requests: smart
// irrigation, drone spraying, and expert visit. Each request value lives
// for one validate-and-submit cycle; on failure it is left untouched so
// the user can correct and resubmit.
package servicereq

import (
	"errors"
	"strings"
	"sync"
	"time"

	"krishi/entities"
	"krishi/pkg/api"
	"krishi/pkg/session"
)

// ErrBusy mirrors the original form's loading flag: one outstanding
// request per flow, re-submission refused while it is in flight.
var ErrBusy = errors.New("a submission is already in flight")

// FieldErrors maps each invalid field to its message. Network failure is
// the only flow-global error; everything caught before submission is
// field-scoped.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	for _, msg := range fe {
		return msg
	}
	return "invalid form"
}

// Submission is what a successful submit hands to the success screen.
type Submission struct {
	Message        string
	NavigateBackTo string
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

func ValidateIrrigation(req entities.SmartIrrigationRequest) FieldErrors {
	errs := FieldErrors{}
	if trimmed(req.FarmLocation) == "" {
		errs["farmLocation"] = "Farm location is required"
	}
	if req.IrrigationType == "" {
		errs["irrigationType"] = "Please select an irrigation type"
	}
	if req.AreaInHectares <= 0 {
		errs["areaInHectares"] = "Please enter a valid area"
	}
	if req.CropType == "" {
		errs["cropType"] = "Please select a crop type"
	}
	if trimmed(req.Query) == "" {
		errs["query"] = "Please describe your requirements"
	}
	return errs
}

func ValidateSpraying(req entities.DroneSprayingRequest, now time.Time) FieldErrors {
	errs := FieldErrors{}
	if trimmed(req.FarmLocation) == "" {
		errs["farmLocation"] = "Farm location is required"
	}
	if req.CropType == "" {
		errs["cropType"] = "Please select a crop type"
	}
	if req.AreaInHectares <= 0 {
		errs["areaInHectares"] = "Please enter a valid area"
	}
	if trimmed(req.Query) == "" {
		errs["query"] = "Please describe your requirements"
	}
	if req.SprayDate == "" {
		errs["sprayDate"] = "Please select a spray date"
	} else if d, err := time.ParseInLocation("2006-01-02", req.SprayDate, now.Location()); err != nil {
		errs["sprayDate"] = "Please select a valid spray date"
	} else if d.Before(startOfDay(now)) {
		// the original date picker refused anything before today
		errs["sprayDate"] = "Spray date cannot be in the past"
	}
	return errs
}

func ValidateExpertVisit(req entities.ExpertVisitRequest) FieldErrors {
	errs := FieldErrors{}
	if trimmed(req.FarmLocation) == "" {
		errs["farmLocation"] = "Farm location is required"
	}
	if trimmed(req.SoilType) == "" {
		errs["soilType"] = "Please enter your soil type"
	}
	if req.CropType == "" {
		errs["cropType"] = "Please select a crop type"
	}
	if req.AreaInHectares <= 0 {
		errs["areaInHectares"] = "Please enter a valid area"
	}
	if trimmed(req.Query) == "" {
		errs["query"] = "Please describe your requirements"
	}
	return errs
}

func (s *Service) SubmitIrrigation(req entities.SmartIrrigationRequest) (Submission, error) {
	if errs := ValidateIrrigation(req); len(errs) > 0 {
		return Submission{}, errs
	}
	if err := s.submit(func(token string) error {
		return s.api.SubmitSmartIrrigation(token, req)
	}); err != nil {
		return Submission{}, err
	}
	return Submission{
		Message:        "Your smart irrigation request has been submitted successfully!",
		NavigateBackTo: "Main",
	}, nil
}

func (s *Service) SubmitSpraying(req entities.DroneSprayingRequest) (Submission, error) {
	if errs := ValidateSpraying(req, time.Now()); len(errs) > 0 {
		return Submission{}, errs
	}
	// the platform wants a full timestamp for the spray date
	if d, err := time.Parse("2006-01-02", req.SprayDate); err == nil {
		req.SprayDate = d.UTC().Format(time.RFC3339)
	}
	if err := s.submit(func(token string) error {
		return s.api.SubmitDroneSpraying(token, req)
	}); err != nil {
		return Submission{}, err
	}
	return Submission{
		Message:        "Your drone spraying request has been submitted successfully!",
		NavigateBackTo: "Main",
	}, nil
}

func (s *Service) SubmitExpertVisit(req entities.ExpertVisitRequest) (Submission, error) {
	if errs := ValidateExpertVisit(req); len(errs) > 0 {
		return Submission{}, errs
	}
	if err := s.submit(func(token string) error {
		return s.api.SubmitExpertVisit(token, req)
	}); err != nil {
		return Submission{}, err
	}
	return Submission{
		Message:        "Your expert visit request has been submitted successfully!",
		NavigateBackTo: "Main",
	}, nil
}

func (s *Service) submit(call func(token string) error) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrBusy
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()
	return call(s.sessions.Token())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func trimmed(v string) string { return strings.TrimSpace(v) }
