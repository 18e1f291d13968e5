package smhi

import "time"

// WarningsAPIEntry is the version document that points at the live data.
type WarningsAPIEntry struct {
	Warning  WarningReference `json:"warning"`
	Metadata Metadata         `json:"metadata"`
	Cap      Cap              `json:"cap"`
}

// WarningReference is the location of the current warnings list.
type WarningReference struct {
	Type string `json:"type"`
	Href string `json:"href"`
}

type Metadata struct {
	Type string `json:"type"`
	Href string `json:"href"`
}

// Cap is the Common Alerting Protocol rendition of the warnings.
type Cap struct {
	Type string `json:"type"`
	Href string `json:"href"`
}

// WarningsResult is one weather event with the areas it affects.
type WarningsResult struct {
	ID                int           `json:"id"`
	NormalProbability bool          `json:"normalProbability"`
	Event             Event         `json:"event"`
	Descriptions      []any         `json:"descriptions"`
	WarningAreas      []WarningArea `json:"warningAreas"`
}

type Event struct {
	LocalizedText
	Code              string            `json:"code"`
	MhoClassification MhoClassification `json:"mhoClassification"`
}

type MhoClassification struct {
	LocalizedText
	Code string `json:"code"`
}

// LocalizedText carries the Swedish and English renditions of a label.
type LocalizedText struct {
	Svenska string `json:"sv"`
	English string `json:"en"`
}

type WarningArea struct {
	ID                int              `json:"id"`
	ApproximateStart  time.Time        `json:"approximateStart"`
	ApproximateEnd    *time.Time       `json:"approximateEnd,omitempty"`
	Published         time.Time        `json:"published"`
	NormalProbability bool             `json:"normalProbability"`
	AreaName          LocalizedText    `json:"areaName"`
	WarningLevel      WarningLevel     `json:"warningLevel"`
	EventDescription  EventDescription `json:"eventDescription"`
	AffectedAreas     []AffectedArea   `json:"affectedAreas"`
	Descriptions      []Description    `json:"descriptions"`
	Area              Area             `json:"area"`
}

type WarningLevel struct {
	LocalizedText
	Code string `json:"code"`
}

type EventDescription struct {
	LocalizedText
	Code string `json:"code"`
}

// AffectedArea is a county or sea area covered by a warning.
type AffectedArea struct {
	ID int `json:"id"`
	LocalizedText
}

type Description struct {
	Title LocalizedText `json:"title"`
	Text  LocalizedText `json:"text"`
}

// Area is the GeoJSON feature collection outlining a warning area.
type Area struct {
	Type     string    `json:"type"`
	Crs      Crs       `json:"crs"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry holds polygon rings as decoded JSON values.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates [][][]any `json:"coordinates"`
}

type Crs struct {
	Type       string        `json:"type"`
	Properties CrsProperties `json:"properties"`
}

type CrsProperties struct {
	Name string `json:"name"`
}
