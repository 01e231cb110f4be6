package room

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
)

var (
	ErrMissingID = apperror.Validation("room id is required")
	ErrNotFound  = apperror.New(apperror.KindNotFound, http.StatusNotFound, "room not found")
	ErrInvalid   = apperror.New(apperror.KindNotFound, http.StatusNotFound, "room not found or has invalid data")
)

// Room is a bookable hotel room as served by the backend.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	IsAvailable bool     `json:"isAvailable"`
	Status      string   `json:"status"`
	CategoryID  string   `json:"category"`
}

// UnmarshalJSON tolerates the shapes the backend actually emits: Mongo-style
// "_id", a category that is either an id string or an embedded object, and a
// missing isAvailable flag (defaults to true).
func (r *Room) UnmarshalJSON(data []byte) error {
	type alias Room
	aux := struct {
		*alias
		MongoID     string          `json:"_id"`
		IsAvailable *bool           `json:"isAvailable"`
		Category    json.RawMessage `json:"category"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if r.ID == "" {
		r.ID = aux.MongoID
	}

	r.IsAvailable = aux.IsAvailable == nil || *aux.IsAvailable

	r.CategoryID = ""
	if len(aux.Category) > 0 {
		var id string
		if err := json.Unmarshal(aux.Category, &id); err == nil {
			r.CategoryID = id
		} else {
			var obj struct {
				ID      string `json:"id"`
				MongoID string `json:"_id"`
			}
			if err := json.Unmarshal(aux.Category, &obj); err == nil {
				r.CategoryID = obj.ID
				if r.CategoryID == "" {
					r.CategoryID = obj.MongoID
				}
			}
		}
	}

	return nil
}

// roomList accepts both a bare JSON array and the {"rooms": [...]} envelope.
type roomList []Room

func (l *roomList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rooms []Room
		if err := json.Unmarshal(trimmed, &rooms); err != nil {
			return err
		}
		*l = rooms
		return nil
	}

	var envelope struct {
		Rooms []Room `json:"rooms"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return err
	}
	*l = envelope.Rooms
	return nil
}

// RecordIssue describes a backend room record that failed shaping. Instead of
// silently vanishing, rejects are surfaced to admin tooling.
type RecordIssue struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// shapeOne validates and normalizes a single record. It returns the reason a
// record is unusable, or an empty string for valid records.
func shapeOne(r *Room) string {
	if r.ID == "" {
		return "missing identifier"
	}
	if r.Price <= 0 {
		return "price must be a positive number"
	}

	if r.Name == "" {
		r.Name = "Unnamed room"
	}
	if r.Description == "" {
		r.Description = "No description available"
	}
	if r.Capacity < 1 {
		r.Capacity = 1
	}
	if r.Amenities == nil {
		r.Amenities = []string{}
	}
	if r.Images == nil {
		r.Images = []string{}
	}
	if r.Status == "" {
		r.Status = "available"
	}
	return ""
}

// Shape splits raw backend records into usable rooms and rejects-with-reason.
// Well-formed records pass through with defaults filled in.
func Shape(raw []Room) ([]Room, []RecordIssue) {
	rooms := make([]Room, 0, len(raw))
	var issues []RecordIssue

	for _, r := range raw {
		if reason := shapeOne(&r); reason != "" {
			issues = append(issues, RecordIssue{ID: r.ID, Name: r.Name, Reason: reason})
			continue
		}
		rooms = append(rooms, r)
	}

	return rooms, issues
}
