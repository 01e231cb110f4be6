package booking

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
)

var (
	ErrCheckInPast      = apperror.Validation("check-in date cannot be in the past")
	ErrCheckOutNotAfter = apperror.Validation("check-out date must be after the check-in date")
	ErrOverCapacity     = apperror.Validation("guest count exceeds the room capacity")
	ErrNoAdults         = apperror.Validation("at least one adult is required")
	ErrInvalidStatus    = apperror.Validation("invalid booking status")
	ErrMissingID        = apperror.Validation("booking id is required")
	ErrNotFound         = apperror.New(apperror.KindNotFound, http.StatusNotFound, "booking not found")
)

// Status is the authoritative booking state. The backend owns every
// transition; this tier only reflects it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Guests is the party size for a stay.
type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// Total is the combined head count.
func (g Guests) Total() int {
	return g.Adults + g.Children
}

// Date is a date-only value using the 2006-01-02 wire format. Decoding also
// accepts full RFC 3339 timestamps, which the backend emits for stored
// bookings; the time of day is discarded.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return err
		}
	}
	d.Time = DateOnly(parsed)
	return nil
}

// RoomRef identifies the booked room. The backend sometimes embeds the full
// room document and sometimes just the id string.
type RoomRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *RoomRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var obj struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	if r.ID == "" {
		r.ID = obj.MongoID
	}
	r.Name = obj.Name
	return nil
}

// Booking is a reservation as the backend reports it. TotalPrice and Status
// are authoritative backend values, never client-derived.
type Booking struct {
	ID         string  `json:"id"`
	Room       RoomRef `json:"room"`
	UserID     string  `json:"user"`
	CheckIn    Date    `json:"checkIn"`
	CheckOut   Date    `json:"checkOut"`
	Guests     Guests  `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Status     Status  `json:"status"`
}

// CanCancel reports whether the booking is still cancellable from the UI.
func (b Booking) CanCancel() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// UnmarshalJSON accepts both "id" and the Mongo-style "_id".
func (b *Booking) UnmarshalJSON(data []byte) error {
	type alias Booking
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(b)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = aux.MongoID
	}
	return nil
}
