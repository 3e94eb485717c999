package models

import (
	"fmt"
	"strings"
	"time"

	"villa_cms/internal/storage"
)

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return true
	}
	return false
}

// VisitorSubmission is media sent in by a guest, waiting for moderation.
type VisitorSubmission struct {
	ID             int64            `json:"id" db:"id"`
	MediaURL       string           `json:"media_url" db:"media_url" validate:"required"`
	AltText        string           `json:"alt_text" db:"alt_text"`
	Category       Category         `json:"category" db:"category" validate:"category"`
	MediaType      MediaType        `json:"media_type" db:"media_type" validate:"mediatype"`
	SubmitterName  string           `json:"submitter_name" db:"submitter_name" validate:"required"`
	SubmitterEmail string           `json:"submitter_email" db:"submitter_email" validate:"omitempty,email"`
	Status         SubmissionStatus `json:"status" db:"status"`
	ModeratorID    string           `json:"moderator_id,omitempty" db:"moderator_id"`
	ModeratorNotes string           `json:"moderator_notes,omitempty" db:"moderator_notes"`
	ReviewedAt     *time.Time       `json:"reviewed_at,omitempty" db:"reviewed_at"`
	ApprovedAt     *time.Time       `json:"approved_at,omitempty" db:"approved_at"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
}

func (s VisitorSubmission) GetID() int64 { return s.ID }

// SetIdentity also forces the initial moderation state: whatever the caller
// supplied, a new submission starts pending with no moderation record.
func (s *VisitorSubmission) SetIdentity(id int64, createdAt time.Time) {
	s.ID = id
	s.CreatedAt = createdAt
	s.Status = SubmissionPending
	s.ModeratorID = ""
	s.ModeratorNotes = ""
	s.ReviewedAt = nil
	s.ApprovedAt = nil
}

func (s VisitorSubmission) Validate() error {
	var extra []string
	if !s.Status.Valid() {
		extra = append(extra, fmt.Sprintf("status has unknown value %q", s.Status))
	}
	return validateStruct(s, extra...)
}

func (s VisitorSubmission) Clone() VisitorSubmission {
	if s.ReviewedAt != nil {
		t := *s.ReviewedAt
		s.ReviewedAt = &t
	}
	if s.ApprovedAt != nil {
		t := *s.ApprovedAt
		s.ApprovedAt = &t
	}
	return s
}

// ToMediaAsset builds the public asset a published submission becomes.
func (s VisitorSubmission) ToMediaAsset() MediaAsset {
	return MediaAsset{
		URL:       s.MediaURL,
		AltText:   s.AltText,
		Title:     s.AltText,
		Category:  s.Category,
		MediaType: s.MediaType,
		Featured:  false,
		SortOrder: 0,
	}
}

// SubmissionPatch edits a submission's content while it is still pending.
// Status and moderation fields change only through a Decision.
type SubmissionPatch struct {
	MediaURL  *string    `json:"media_url,omitempty"`
	AltText   *string    `json:"alt_text,omitempty"`
	Category  *Category  `json:"category,omitempty"`
	MediaType *MediaType `json:"media_type,omitempty"`
}

func (p SubmissionPatch) Apply(s *VisitorSubmission) error {
	if s.Status != SubmissionPending {
		return &storage.PreconditionError{
			Op:     "models.SubmissionPatch.Apply",
			Reason: fmt.Sprintf("submission %d is %s and can no longer be edited", s.ID, s.Status),
		}
	}

	if p.MediaURL != nil {
		s.MediaURL = *p.MediaURL
	}
	if p.AltText != nil {
		s.AltText = *p.AltText
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.MediaType != nil {
		s.MediaType = *p.MediaType
	}

	return nil
}

// Decision is a moderator's verdict on a pending submission.
type Decision struct {
	Status      SubmissionStatus
	ModeratorID string
	Notes       string
	At          time.Time
}

func Approve(moderatorID, notes string, at time.Time) Decision {
	return Decision{Status: SubmissionApproved, ModeratorID: moderatorID, Notes: notes, At: at}
}

func Reject(moderatorID, notes string, at time.Time) Decision {
	return Decision{Status: SubmissionRejected, ModeratorID: moderatorID, Notes: notes, At: at}
}

// Apply moves a pending submission into its terminal state. It fails when the
// submission was already decided, so a decision is applied exactly once.
func (d Decision) Apply(s *VisitorSubmission) error {
	if strings.TrimSpace(d.ModeratorID) == "" {
		return storage.NewValidationError("moderator_id is required")
	}
	if d.Status != SubmissionApproved && d.Status != SubmissionRejected {
		return storage.NewValidationError(fmt.Sprintf("decision must approve or reject, got %q", d.Status))
	}

	if s.Status != SubmissionPending {
		return &storage.PreconditionError{
			Op:     "models.Decision.Apply",
			Reason: fmt.Sprintf("submission %d was already %s", s.ID, s.Status),
		}
	}

	at := d.At.UTC()
	s.Status = d.Status
	s.ModeratorID = d.ModeratorID
	s.ModeratorNotes = d.Notes
	s.ReviewedAt = &at
	if d.Status == SubmissionApproved {
		s.ApprovedAt = &at
	}

	return nil
}
