package models

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Verdict is the classifier's judgement of a single check-in photo.
// Field names mirror the model's wire format.
type Verdict struct {
	IsGymEquipment bool   `json:"isGymEquipment"`
	Label          string `json:"label"`
	Confidence     string `json:"confidence"`
}

// ErrorVerdict is returned for every classification failure: a missed
// check-in is recoverable, a falsely credited one is not.
func ErrorVerdict() Verdict {
	return Verdict{
		IsGymEquipment: false,
		Label:          "error",
		Confidence:     ConfidenceLow,
	}
}
