package generate_slots

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	StartTime       string `json:"startTime"` // "09:00"
	EndTime         string `json:"endTime"`   // "18:00"
	DurationMinutes int    `json:"durationMinutes"`
}
