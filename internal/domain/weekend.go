// Package domain contains the core data types for the weekend planner.
// This package has zero external dependencies and is imported by every other
// internal package (store, settlement, service, handler).
//
// All state lives in a single WeekendData aggregate that is read and
// rewritten wholesale on every mutation. JSON field names match the persisted
// document exactly, so the encoded aggregate IS the storage format.
package domain

// Wish categories. The labels are Dutch because the planning group is;
// to the rest of the system they are opaque enum values.
const (
	CategoryEten    = "eten"
	CategoryDrinken = "drinken"
	CategoryOverig  = "overig"
)

// ValidCategory reports whether c is one of the wish categories.
func ValidCategory(c string) bool {
	return c == CategoryEten || c == CategoryDrinken || c == CategoryOverig
}

// Participant is a member of the weekend. Email is the idempotent login key:
// joining again with the same email returns the existing participant.
type Participant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"` // always lower-cased; empty when joined without one
	Emoji    string `json:"emoji"`
	JoinedAt int64  `json:"joinedAt"` // epoch milliseconds
}

// Wish is a food/drink/misc request. ParticipantName is a snapshot of the
// owner's name at creation time, not a foreign-key lookup.
type Wish struct {
	ID              string `json:"id"`
	ParticipantID   string `json:"participantId"`
	ParticipantName string `json:"participantName"`
	Category        string `json:"category"`
	Text            string `json:"text"`
	CreatedAt       int64  `json:"createdAt"`
}

// Activity is a proposed activity participants can vote on.
// Votes holds participant ids with unique membership; order is vote order.
type Activity struct {
	ID              string   `json:"id"`
	ParticipantID   string   `json:"participantId"`
	ParticipantName string   `json:"participantName"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Votes           []string `json:"votes"`
	CreatedAt       int64    `json:"createdAt"`
}

// PackItem is one entry on the shared packing list. AssignedTo/AssignedToID
// are both empty while the item is unclaimed.
type PackItem struct {
	ID           string `json:"id"`
	Item         string `json:"item"`
	AddedBy      string `json:"addedBy"`
	AssignedTo   string `json:"assignedTo"`
	AssignedToID string `json:"assignedToId"`
	Checked      bool   `json:"checked"`
}

// Expense is a payment made by one participant on behalf of a split group.
// Amount is integer minor units (cents) — never a float.
// An empty SplitBetween means "split across all current participants".
type Expense struct {
	ID              string   `json:"id"`
	ParticipantID   string   `json:"participantId"`
	ParticipantName string   `json:"participantName"`
	Description     string   `json:"description"`
	Amount          int64    `json:"amount"`
	SplitBetween    []string `json:"splitBetween"`
	CreatedAt       int64    `json:"createdAt"`
}

// ScheduleItem is one row of the day-by-day schedule.
// Day is a free-text label (Vrijdag/Zaterdag/Zondag in practice),
// Time a "HH:MM" 24h string.
type ScheduleItem struct {
	ID       string `json:"id"`
	Day      string `json:"day"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	AddedBy  string `json:"addedBy"`
}

// WeekendData is the root aggregate: six ordered collections for the one
// event. Insertion order is preserved on append and collections are never
// reordered in storage.
type WeekendData struct {
	Participants []Participant  `json:"participants"`
	Wishes       []Wish         `json:"wishes"`
	Activities   []Activity     `json:"activities"`
	PackList     []PackItem     `json:"packList"`
	Expenses     []Expense      `json:"expenses"`
	Schedule     []ScheduleItem `json:"schedule"`
}

// NewWeekendData returns an empty document with all six collections
// allocated, so every collection encodes as [] rather than null.
func NewWeekendData() WeekendData {
	return WeekendData{
		Participants: []Participant{},
		Wishes:       []Wish{},
		Activities:   []Activity{},
		PackList:     []PackItem{},
		Expenses:     []Expense{},
		Schedule:     []ScheduleItem{},
	}
}
