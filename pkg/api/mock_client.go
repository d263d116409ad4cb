// pkg/api/mock_client.go

package api

import (
	"sync"

	"krishi/entities"
)

// Mock is an in-memory Client for tests and offline development. Every
// call is counted so tests can assert that validation failures never
// reach the network layer.
type Mock struct {
	mu    sync.Mutex
	calls map[string]int

	LoginUser      entities.User
	LoginErr       error
	RegisterUser   entities.User
	RegisterErr    error
	SubmitErr      error
	Calendars      []entities.CropCalendar
	CalendarsErr   error
	FeedPosts      []entities.Post
	FeedErr        error
	LikeErr        error
	LastToken      string
	LastIrrigation entities.SmartIrrigationRequest
	LastSpraying   entities.DroneSprayingRequest
	LastVisit      entities.ExpertVisitRequest
}

func NewMock() *Mock { return &Mock{calls: map[string]int{}} }

// CallCount reports how many calls hit the given method name, and with
// an empty name, across all methods.
func (m *Mock) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if method == "" {
		total := 0
		for _, n := range m.calls {
			total += n
		}
		return total
	}
	return m.calls[method]
}

func (m *Mock) record(method, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[method]++
	if token != "" {
		m.LastToken = token
	}
}

func (m *Mock) FarmerLogin(phoneNumber, password string) (entities.User, error) {
	m.record("FarmerLogin", "")
	return m.LoginUser, m.LoginErr
}

func (m *Mock) ExpertLogin(email, password string) (entities.User, error) {
	m.record("ExpertLogin", "")
	return m.LoginUser, m.LoginErr
}

func (m *Mock) FarmerRegister(req RegisterRequest) (entities.User, error) {
	m.record("FarmerRegister", "")
	return m.RegisterUser, m.RegisterErr
}

func (m *Mock) ExpertRegister(req RegisterRequest) (entities.User, error) {
	m.record("ExpertRegister", "")
	return m.RegisterUser, m.RegisterErr
}

func (m *Mock) SubmitSmartIrrigation(token string, req entities.SmartIrrigationRequest) error {
	m.record("SubmitSmartIrrigation", token)
	m.LastIrrigation = req
	return m.SubmitErr
}

func (m *Mock) SubmitDroneSpraying(token string, req entities.DroneSprayingRequest) error {
	m.record("SubmitDroneSpraying", token)
	m.LastSpraying = req
	return m.SubmitErr
}

func (m *Mock) SubmitExpertVisit(token string, req entities.ExpertVisitRequest) error {
	m.record("SubmitExpertVisit", token)
	m.LastVisit = req
	return m.SubmitErr
}

func (m *Mock) CropCalendars(token string) ([]entities.CropCalendar, error) {
	m.record("CropCalendars", token)
	return m.Calendars, m.CalendarsErr
}

func (m *Mock) CreateCropCalendar(token string, cal entities.CropCalendar) error {
	m.record("CreateCropCalendar", token)
	return m.SubmitErr
}

func (m *Mock) Posts() ([]entities.Post, error) {
	m.record("Posts", "")
	return m.FeedPosts, m.FeedErr
}

func (m *Mock) LikePost(token, postID string) error {
	m.record("LikePost", token)
	return m.LikeErr
}

func (m *Mock) CreatePost(token, content, image string) error {
	m.record("CreatePost", token)
	return m.SubmitErr
}
