// pkg/api/client.go

package api

import "krishi/entities"

// Client is the remote KrishiAadhar API. Authenticated calls take the
// already-sanitized token and send it in the x-access-token header.
type Client interface {
	FarmerLogin(phoneNumber, password string) (entities.User, error)
	ExpertLogin(email, password string) (entities.User, error)
	FarmerRegister(req RegisterRequest) (entities.User, error)
	ExpertRegister(req RegisterRequest) (entities.User, error)

	SubmitSmartIrrigation(token string, req entities.SmartIrrigationRequest) error
	SubmitDroneSpraying(token string, req entities.DroneSprayingRequest) error
	SubmitExpertVisit(token string, req entities.ExpertVisitRequest) error

	CropCalendars(token string) ([]entities.CropCalendar, error)
	CreateCropCalendar(token string, cal entities.CropCalendar) error

	Posts() ([]entities.Post, error)
	LikePost(token, postID string) error
	CreatePost(token, content, image string) error
}

type RegisterRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

// envelope is the platform's uniform response wrapper.
type envelope struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Response any    `json:"response"`
}

// ServerError carries a business failure reported by the platform. The
// message is shown to the user verbatim when present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}
