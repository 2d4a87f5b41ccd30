package models

// Location สาขาของร้านพร้อมรายชื่อกะ
type Location struct {
	ID     string  `json:"id" bson:"_id" example:"san-carlo-karlin"`
	Name   string  `json:"name" bson:"name" example:"San Carlo - Karlín"`
	Shifts []Shift `json:"shifts" bson:"shifts"`
}

// LocationSummary is the id/name pair the picker and popup work with.
type LocationSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (l Location) Summary() LocationSummary {
	return LocationSummary{ID: l.ID, Name: l.Name}
}
