package classification

import "insight-srv/internal/model"

// Risk tiers over the stored 0-10 risk score. Both bounds are inclusive lower bounds.
const (
	HighRiskMin   = 7.0
	MediumRiskMin = 4.0
)

// Categories holds the label partition (Safe..Other) and the overlays
// (Flagged, HighRisk, MediumRisk, LowRisk). Every bucket keeps input order.
type Categories struct {
	Safe      []model.Message
	Fraud     []model.Message
	Sensitive []model.Message
	Spam      []model.Message
	Other     []model.Message

	Flagged []model.Message

	HighRisk   []model.Message
	MediumRisk []model.Message
	LowRisk    []model.Message
}

type Stats struct {
	Total      int
	Safe       int
	Fraud      int
	Sensitive  int
	Spam       int
	Other      int
	Flagged    int
	HighRisk   int
	MediumRisk int
	LowRisk    int
}

type Report struct {
	Categories Categories
	Stats      Stats
}
