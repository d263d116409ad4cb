package entities

// The platform distinguishes two account kinds. The expert role string on
// the wire is AGRIEXPERT, not EXPERT.
const (
	RoleFarmer = "FARMER"
	RoleExpert = "AGRIEXPERT"
)

type User struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	ProfilePic  string `json:"profilePic,omitempty"`
	Role        string `json:"role"`
	Token       string `json:"token"`
	Location    string `json:"location,omitempty"`
}

type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Role  string `json:"role,omitempty"`
}
