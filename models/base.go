package models

// Base carries the integer id every stored entity has. Ids are assigned
// by the store as max(existing)+1 within a collection.
type Base struct {
	ID int `json:"id"`
}

func (b Base) GetID() int { return b.ID }
