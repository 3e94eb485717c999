package models

import (
	"cmp"
	"time"
)

// Category is the closed set of gallery categories. It is shared by the write
// path (validation) and the filter path (ListByCategory).
type Category string

const (
	CategoryEntireVilla Category = "entire-villa"
	CategoryFamilySuite Category = "family-suite"
	CategoryGroupRoom   Category = "group-room"
	CategoryTripleRoom  Category = "triple-room"
	CategoryDiningArea  Category = "dining-area"
	CategoryPoolDeck    Category = "pool-deck"
	CategoryLakeGarden  Category = "lake-garden"
	CategoryRoofGarden  Category = "roof-garden"
	CategoryFrontGarden Category = "front-garden"
	CategoryKoggalaLake Category = "koggala-lake"
	CategoryExcursions  Category = "excursions"
	CategoryFriends     Category = "friends"
	CategoryEvents      Category = "events"
	CategoryDefault     Category = "default"
)

var categories = []Category{
	CategoryEntireVilla,
	CategoryFamilySuite,
	CategoryGroupRoom,
	CategoryTripleRoom,
	CategoryDiningArea,
	CategoryPoolDeck,
	CategoryLakeGarden,
	CategoryRoofGarden,
	CategoryFrontGarden,
	CategoryKoggalaLake,
	CategoryExcursions,
	CategoryFriends,
	CategoryEvents,
	CategoryDefault,
}

// Categories returns a copy of the registered category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo:
		return true
	}
	return false
}

// MediaAsset is a public gallery item.
type MediaAsset struct {
	ID          int64     `json:"id" db:"id"`
	URL         string    `json:"url" db:"url" validate:"required"`
	AltText     string    `json:"alt_text" db:"alt_text"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    Category  `json:"category" db:"category" validate:"category"`
	Tags        []string  `json:"tags" db:"tags"`
	MediaType   MediaType `json:"media_type" db:"media_type" validate:"mediatype"`
	Featured    bool      `json:"featured" db:"featured"`
	SortOrder   int       `json:"sort_order" db:"sort_order" validate:"sortorder"`
	FileSize    int64     `json:"file_size" db:"file_size" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (m MediaAsset) GetID() int64 { return m.ID }

func (m *MediaAsset) SetIdentity(id int64, createdAt time.Time) {
	m.ID = id
	m.CreatedAt = createdAt
}

func (m MediaAsset) Validate() error { return validateStruct(m) }

func (m MediaAsset) Clone() MediaAsset {
	m.Tags = cloneStrings(m.Tags)
	return m
}

// MediaAssetPatch names the fields an Update may change. Nil fields are left as they are.
type MediaAssetPatch struct {
	URL         *string    `json:"url,omitempty"`
	AltText     *string    `json:"alt_text,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	MediaType   *MediaType `json:"media_type,omitempty"`
	Featured    *bool      `json:"featured,omitempty"`
	SortOrder   *int       `json:"sort_order,omitempty"`
	FileSize    *int64     `json:"file_size,omitempty"`
}

func (p MediaAssetPatch) Apply(m *MediaAsset) error {
	if p.URL != nil {
		m.URL = *p.URL
	}
	if p.AltText != nil {
		m.AltText = *p.AltText
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Tags != nil {
		m.Tags = cloneStrings(*p.Tags)
	}
	if p.MediaType != nil {
		m.MediaType = *p.MediaType
	}
	if p.Featured != nil {
		m.Featured = *p.Featured
	}
	if p.SortOrder != nil {
		m.SortOrder = *p.SortOrder
	}
	if p.FileSize != nil {
		m.FileSize = *p.FileSize
	}

	return nil
}

// MediaAssetUpdate is one entry of a batch update.
type MediaAssetUpdate struct {
	ID    int64           `json:"id" validate:"required"`
	Patch MediaAssetPatch `json:"patch"`
}

// CompareMedia orders assets by SortOrder, then ID.
func CompareMedia(a, b MediaAsset) int {
	if c := cmp.Compare(a.SortOrder, b.SortOrder); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
