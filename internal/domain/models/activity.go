package models

import "time"

type Activity struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" validate:"required"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (a Activity) GetID() int64 { return a.ID }

func (a *Activity) SetIdentity(id int64, createdAt time.Time) {
	a.ID = id
	a.CreatedAt = createdAt
}

func (a Activity) Validate() error { return validateStruct(a) }

func (a Activity) Clone() Activity { return a }

type ActivityPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func (p ActivityPatch) Apply(a *Activity) error {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}

	return nil
}

type DiningOption struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" validate:"required"`
	Description string    `json:"description" db:"description"`
	Features    []string  `json:"features" db:"features"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (d DiningOption) GetID() int64 { return d.ID }

func (d *DiningOption) SetIdentity(id int64, createdAt time.Time) {
	d.ID = id
	d.CreatedAt = createdAt
}

func (d DiningOption) Validate() error { return validateStruct(d) }

func (d DiningOption) Clone() DiningOption {
	d.Features = cloneStrings(d.Features)
	return d
}

type DiningOptionPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

func (p DiningOptionPatch) Apply(d *DiningOption) error {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Features != nil {
		d.Features = cloneStrings(*p.Features)
	}
	if p.ImageURL != nil {
		d.ImageURL = *p.ImageURL
	}

	return nil
}
