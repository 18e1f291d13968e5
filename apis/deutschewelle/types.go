package deutschewelle

import "time"

// SearchResult is one page of the global search endpoint.
type SearchResult struct {
	LanguageID       int              `json:"languageId"`
	PaginationInfo   PaginationInfo   `json:"paginationInfo"`
	Items            []Item           `json:"items"`
	TrackingInfo     TrackingInfo     `json:"trackingInfo"`
	ResultCount      int              `json:"resultCount"`
	FilterParameters FilterParameters `json:"filterParameters"`
}

type PaginationInfo struct {
	AvailableItems int `json:"availableItems"`
	AvailablePages int `json:"availablePages"`
	PageSize       int `json:"pageSize"`
	CurrentPage    int `json:"currentPage"`
	ItemsOnPage    int `json:"itemsOnPage"`
	FirstItem      int `json:"firstItem"`
	LastItem       int `json:"lastItem"`
}

// Item is a single article teaser.
type Item struct {
	Type                string    `json:"type"`
	Name                string    `json:"name"`
	TeaserText          string    `json:"teaserText"`
	DisplayDate         time.Time `json:"displayDate"`
	Image               Image     `json:"image"`
	Reference           Reference `json:"reference"`
	ColumnCount         int       `json:"columnCount"`
	AllowedColumnCounts []int     `json:"allowedColumnCounts"`
	CommentsEnabled     bool      `json:"commentsEnabled"`
}

type Image struct {
	ID    int    `json:"id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Sizes []Size `json:"sizes"`
}

type Size struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}

// Reference points at the full article.
type Reference struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type TrackingInfo struct {
	Level2         string         `json:"level2"`
	Page           string         `json:"page"`
	CustomCriteria CustomCriteria `json:"customCriteria"`
}

// CustomCriteria holds opaque analytics keys. The upper-case keys are
// spelled that way on the wire.
type CustomCriteria struct {
	X1  string `json:"x1"`
	X2  string `json:"x2"`
	X3  string `json:"x3"`
	X4  string `json:"x4"`
	X5  string `json:"x5"`
	X6  string `json:"x6"`
	X7  string `json:"x7"`
	X8  string `json:"x8"`
	X9  string `json:"x9"`
	X10 string `json:"x10"`
	X14 string `json:"X14"`
	X15 string `json:"X15"`
	X18 string `json:"X18"`
}

// FilterParameters echoes the query the server applied.
type FilterParameters struct {
	Terms        string    `json:"terms"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	SortByDate   bool      `json:"sortByDate"`
	ContentTypes []string  `json:"contentTypes"`
	ProgramIDs   []any     `json:"programIds"`
	CategoryIDs  []any     `json:"categoryIds"`
	ContentIDs   []any     `json:"contentIds"`
}
