package entities

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
)

var CropTypes = []string{"Cereal", "Vegetable", "Fruit", "Pulses", "Oilseeds"}

var Seasons = []string{"Rabi", "Kharif", "Zaid"}

type CropCalendar struct {
	ID                 string   `json:"id"`
	ProjectName        string   `json:"projectName"`
	ProjectDescription string   `json:"projectDescription"`
	CropName           string   `json:"cropName"`
	CropType           string   `json:"cropType"`
	FieldSize          float64  `json:"fieldSize"`
	Location           string   `json:"location"`
	Season             string   `json:"season"`
	StartDate          string   `json:"startDate"` // YYYY-MM-DD
	SeedVariety        string   `json:"seedVariety,omitempty"`
	CropVariety        string   `json:"cropVariety,omitempty"`
	Status             string   `json:"status"` // PENDING|COMPLETED
	Expert             *UserRef `json:"expert,omitempty"`
}
