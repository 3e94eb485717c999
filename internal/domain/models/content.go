package models

import (
	"cmp"
	"fmt"
	"time"

	"villa_cms/internal/storage"
)

type DocumentCategory string

const (
	DocumentCategoryMarketing DocumentCategory = "marketing"
	DocumentCategoryNews      DocumentCategory = "news"
	DocumentCategoryEvents    DocumentCategory = "events"
	DocumentCategorySEO       DocumentCategory = "seo"
	DocumentCategoryContent   DocumentCategory = "content"
)

func (c DocumentCategory) Valid() bool {
	switch c {
	case DocumentCategoryMarketing, DocumentCategoryNews, DocumentCategoryEvents,
		DocumentCategorySEO, DocumentCategoryContent:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentPending   DocumentStatus = "pending"
	DocumentProcessed DocumentStatus = "processed"
	DocumentActive    DocumentStatus = "active"
	DocumentArchived  DocumentStatus = "archived"
)

func (s DocumentStatus) rank() int {
	switch s {
	case DocumentPending:
		return 0
	case DocumentProcessed:
		return 1
	case DocumentActive:
		return 2
	case DocumentArchived:
		return 3
	}
	return -1
}

func (s DocumentStatus) Valid() bool { return s.rank() >= 0 }

// CanTransition reports whether a document may move from s to next.
// Statuses only move forward; archiving is allowed from any live status and
// archived is terminal. Staying in place is always allowed.
func (s DocumentStatus) CanTransition(next DocumentStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	switch s {
	case DocumentArchived:
		return false
	case DocumentPending, DocumentProcessed, DocumentActive:
		return next.rank() > s.rank()
	}
	return false
}

// ContentDocument is an uploaded marketing or editorial file.
type ContentDocument struct {
	ID             int64            `json:"id" db:"id"`
	Title          string           `json:"title" db:"title" validate:"required"`
	Description    string           `json:"description" db:"description"`
	FileURL        string           `json:"file_url" db:"file_url" validate:"required"`
	FileType       string           `json:"file_type" db:"file_type"`
	Category       DocumentCategory `json:"category" db:"category" validate:"doccategory"`
	TargetAudience []string         `json:"target_audience" db:"target_audience"`
	Status         DocumentStatus   `json:"status" db:"status"`
	SortOrder      int              `json:"sort_order" db:"sort_order" validate:"sortorder"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

func (d ContentDocument) GetID() int64 { return d.ID }

// SetIdentity also defaults an empty status to pending.
func (d *ContentDocument) SetIdentity(id int64, createdAt time.Time) {
	d.ID = id
	d.CreatedAt = createdAt
	d.UpdatedAt = createdAt
	if d.Status == "" {
		d.Status = DocumentPending
	}
}

func (d *ContentDocument) Touch(at time.Time) { d.UpdatedAt = at }

func (d ContentDocument) Validate() error {
	var extra []string
	if !d.Status.Valid() {
		extra = append(extra, fmt.Sprintf("status has unknown value %q", d.Status))
	}
	return validateStruct(d, extra...)
}

func (d ContentDocument) Clone() ContentDocument {
	d.TargetAudience = cloneStrings(d.TargetAudience)
	return d
}

type ContentDocumentPatch struct {
	Title          *string           `json:"title,omitempty"`
	Description    *string           `json:"description,omitempty"`
	FileURL        *string           `json:"file_url,omitempty"`
	FileType       *string           `json:"file_type,omitempty"`
	Category       *DocumentCategory `json:"category,omitempty"`
	TargetAudience *[]string         `json:"target_audience,omitempty"`
	Status         *DocumentStatus   `json:"status,omitempty"`
	SortOrder      *int              `json:"sort_order,omitempty"`
}

// Apply merges the patch, rejecting a status change that moves backwards.
func (p ContentDocumentPatch) Apply(d *ContentDocument) error {
	if p.Status != nil && !p.Status.Valid() {
		return storage.NewValidationError(fmt.Sprintf("status has unknown value %q", *p.Status))
	}
	if p.Status != nil && !d.Status.CanTransition(*p.Status) {
		return &storage.PreconditionError{
			Op:     "models.ContentDocumentPatch.Apply",
			Reason: fmt.Sprintf("document status cannot move from %s to %s", d.Status, *p.Status),
		}
	}

	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.FileURL != nil {
		d.FileURL = *p.FileURL
	}
	if p.FileType != nil {
		d.FileType = *p.FileType
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.TargetAudience != nil {
		d.TargetAudience = cloneStrings(*p.TargetAudience)
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.SortOrder != nil {
		d.SortOrder = *p.SortOrder
	}

	return nil
}

// Empty reports whether the patch sets no field at all.
func (p ContentDocumentPatch) Empty() bool {
	return p == ContentDocumentPatch{}
}

func CompareDocuments(a, b ContentDocument) int {
	if c := cmp.Compare(a.SortOrder, b.SortOrder); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
