package models

import "time"

type Room struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" validate:"required"`
	Description string    `json:"description" db:"description"`
	NightlyRate float64   `json:"nightly_rate" db:"nightly_rate" validate:"gte=0"`
	Capacity    int       `json:"capacity" db:"capacity" validate:"min=1"`
	Size        string    `json:"size" db:"size"`
	Features    []string  `json:"features" db:"features"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (r Room) GetID() int64 { return r.ID }

func (r *Room) SetIdentity(id int64, createdAt time.Time) {
	r.ID = id
	r.CreatedAt = createdAt
}

func (r Room) Validate() error { return validateStruct(r) }

func (r Room) Clone() Room {
	r.Features = cloneStrings(r.Features)
	return r
}

type RoomPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	NightlyRate *float64  `json:"nightly_rate,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Size        *string   `json:"size,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

func (p RoomPatch) Apply(r *Room) error {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.NightlyRate != nil {
		r.NightlyRate = *p.NightlyRate
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	if p.Size != nil {
		r.Size = *p.Size
	}
	if p.Features != nil {
		r.Features = cloneStrings(*p.Features)
	}
	if p.ImageURL != nil {
		r.ImageURL = *p.ImageURL
	}

	return nil
}
