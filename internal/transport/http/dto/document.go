package dto

import "villa_cms/internal/domain/models"

type CreateDocumentRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	FileURL        string   `json:"file_url" validate:"required"`
	FileType       string   `json:"file_type"`
	Category       string   `json:"category" validate:"required,doccategory"`
	TargetAudience []string `json:"target_audience"`
	SortOrder      int      `json:"sort_order"`
}

func (r CreateDocumentRequest) ToDomain() models.ContentDocument {
	return models.ContentDocument{
		Title:          r.Title,
		Description:    r.Description,
		FileURL:        r.FileURL,
		FileType:       r.FileType,
		Category:       models.DocumentCategory(r.Category),
		TargetAudience: r.TargetAudience,
		SortOrder:      r.SortOrder,
	}
}
