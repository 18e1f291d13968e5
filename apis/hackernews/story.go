package hackernews

import (
	"time"

	"github.com/felsokning/codeninjas/util"
)

// ItemType is the kind of a Hacker News item.
type ItemType int

const (
	ItemStory ItemType = iota
	ItemJob
	ItemComment
	ItemPoll
	ItemPollOpt
)

var itemTypeNames = util.NewEnumNames("item type", map[ItemType]string{
	ItemStory:   "story",
	ItemJob:     "job",
	ItemComment: "comment",
	ItemPoll:    "poll",
	ItemPollOpt: "pollopt",
})

func (t ItemType) String() string { return itemTypeNames.String(t) }

// MarshalText implements encoding.TextMarshaler.
func (t ItemType) MarshalText() ([]byte, error) { return itemTypeNames.Marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ItemType) UnmarshalText(text []byte) error { return itemTypeNames.Unmarshal(text, t) }

// Story is an item as returned by the item endpoint.
type Story struct {
	ID          int      `json:"id"`
	By          string   `json:"by"`
	Time        int64    `json:"time"`
	Title       string   `json:"title"`
	URL         string   `json:"url,omitempty"`
	Text        string   `json:"text,omitempty"`
	Score       int      `json:"score"`
	Descendants int      `json:"descendants"`
	Kids        []int    `json:"kids,omitempty"`
	Type        ItemType `json:"type"`
}

// Posted returns Time as a UTC timestamp.
func (s Story) Posted() time.Time {
	return time.Unix(s.Time, 0).UTC()
}
