package category

import (
	"encoding/json"
	"net/http"

	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
)

var (
	ErrMissingID = apperror.Validation("category id is required")
	ErrNotFound  = apperror.New(apperror.KindNotFound, http.StatusNotFound, "category not found")
)

// Category is a lookup/filter dimension for rooms.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts both "id" and the Mongo-style "_id".
func (c *Category) UnmarshalJSON(data []byte) error {
	type alias Category
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = aux.MongoID
	}
	return nil
}
