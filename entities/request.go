package entities

var IrrigationTypes = []string{"DRIP", "SPRINKLER", "SURFACE", "SUBSURFACE"}

// SmartIrrigationRequest is the payload for an irrigation setup request.
// It lives only for one fill-and-submit cycle and is never persisted.
type SmartIrrigationRequest struct {
	FarmLocation   string  `json:"farmLocation"`
	IrrigationType string  `json:"irrigationType"`
	AreaInHectares float64 `json:"areaInHectares"`
	CropType       string  `json:"cropType"`
	Query          string  `json:"query"`
}

type DroneSprayingRequest struct {
	FarmLocation   string  `json:"farmLocation"`
	CropType       string  `json:"cropType"`
	AreaInHectares float64 `json:"areaInHectares"`
	SprayDate      string  `json:"sprayDate"` // RFC3339 on the wire, YYYY-MM-DD as input
	Query          string  `json:"query"`
}

type ExpertVisitRequest struct {
	FarmLocation   string  `json:"farmLocation"`
	SoilType       string  `json:"soilType"`
	CropType       string  `json:"cropType"`
	AreaInHectares float64 `json:"areaInHectares"`
	Query          string  `json:"query"`
}
