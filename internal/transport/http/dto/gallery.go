package dto

import (
	"villa_cms/internal/domain/models"
)

type CreateMediaRequest struct {
	URL         string   `json:"url" validate:"required"`
	AltText     string   `json:"alt_text"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required,category"`
	Tags        []string `json:"tags"`
	MediaType   string   `json:"media_type" validate:"required,oneof=image video"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sort_order" validate:"gte=0"`
	FileSize    int64    `json:"file_size" validate:"gte=0"`
}

func (r CreateMediaRequest) ToDomain() models.MediaAsset {
	return models.MediaAsset{
		URL:         r.URL,
		AltText:     r.AltText,
		Title:       r.Title,
		Description: r.Description,
		Category:    models.Category(r.Category),
		Tags:        r.Tags,
		MediaType:   models.MediaType(r.MediaType),
		Featured:    r.Featured,
		SortOrder:   r.SortOrder,
		FileSize:    r.FileSize,
	}
}

// BatchUpdateRequest carries either explicit patches or a new order of ids.
type BatchUpdateRequest struct {
	Updates []models.MediaAssetUpdate `json:"updates" validate:"omitempty,dive"`
	Order   []int64                   `json:"order"`
}

type GalleryQuery struct {
	Category string   `query:"category"`
	Tags     []string `query:"tag"`
	MatchAll bool     `query:"match_all"`
}
