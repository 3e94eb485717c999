package dto

import "villa_cms/internal/domain/models"

type SubmitMediaRequest struct {
	MediaURL       string `json:"media_url" validate:"required"`
	AltText        string `json:"alt_text"`
	Category       string `json:"category" validate:"required,category"`
	MediaType      string `json:"media_type" validate:"required,oneof=image video"`
	SubmitterName  string `json:"submitter_name" validate:"required"`
	SubmitterEmail string `json:"submitter_email" validate:"omitempty,email"`
}

func (r SubmitMediaRequest) ToDomain() models.VisitorSubmission {
	return models.VisitorSubmission{
		MediaURL:       r.MediaURL,
		AltText:        r.AltText,
		Category:       models.Category(r.Category),
		MediaType:      models.MediaType(r.MediaType),
		SubmitterName:  r.SubmitterName,
		SubmitterEmail: r.SubmitterEmail,
	}
}

type DecisionRequest struct {
	ModeratorID string `json:"moderator_id" validate:"required"`
	Notes       string `json:"notes"`
}
