package postgres

import (
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"villa_cms/internal/domain/models"
)

type RoomRepo struct {
	crud[models.Room, models.RoomPatch, *models.Room]
}

func NewRoomRepo(db *pgxpool.Pool, timeout time.Duration) *RoomRepo {
	return &RoomRepo{newCRUD[models.Room, models.RoomPatch, *models.Room](db, timeout, mapping[models.Room]{
		entity:  "room",
		table:   "rooms",
		columns: []string{"name", "description", "nightly_rate", "capacity", "size", "features", "image_url", "created_at"},
		values: func(r models.Room) []interface{} {
			return []interface{}{r.Name, r.Description, r.NightlyRate, r.Capacity, r.Size, strs(r.Features), r.ImageURL, r.CreatedAt}
		},
		scan: func(row pgx.Row) (models.Room, error) {
			var r models.Room
			err := row.Scan(&r.ID, &r.Name, &r.Description, &r.NightlyRate, &r.Capacity, &r.Size, &r.Features, &r.ImageURL, &r.CreatedAt)
			r.CreatedAt = r.CreatedAt.UTC()
			return r, err
		},
	})}
}

type TestimonialRepo struct {
	crud[models.Testimonial, models.TestimonialPatch, *models.Testimonial]
}

func NewTestimonialRepo(db *pgxpool.Pool, timeout time.Duration) *TestimonialRepo {
	return &TestimonialRepo{newCRUD[models.Testimonial, models.TestimonialPatch, *models.Testimonial](db, timeout, mapping[models.Testimonial]{
		entity:  "testimonial",
		table:   "testimonials",
		columns: []string{"guest_name", "guest_country", "rating", "comment", "created_at"},
		values: func(t models.Testimonial) []interface{} {
			return []interface{}{t.GuestName, t.GuestCountry, t.Rating, t.Comment, t.CreatedAt}
		},
		scan: func(row pgx.Row) (models.Testimonial, error) {
			var t models.Testimonial
			err := row.Scan(&t.ID, &t.GuestName, &t.GuestCountry, &t.Rating, &t.Comment, &t.CreatedAt)
			t.CreatedAt = t.CreatedAt.UTC()
			return t, err
		},
	})}
}

type ActivityRepo struct {
	crud[models.Activity, models.ActivityPatch, *models.Activity]
}

func NewActivityRepo(db *pgxpool.Pool, timeout time.Duration) *ActivityRepo {
	return &ActivityRepo{newCRUD[models.Activity, models.ActivityPatch, *models.Activity](db, timeout, mapping[models.Activity]{
		entity:  "activity",
		table:   "activities",
		columns: []string{"name", "description", "image_url", "created_at"},
		values: func(a models.Activity) []interface{} {
			return []interface{}{a.Name, a.Description, a.ImageURL, a.CreatedAt}
		},
		scan: func(row pgx.Row) (models.Activity, error) {
			var a models.Activity
			err := row.Scan(&a.ID, &a.Name, &a.Description, &a.ImageURL, &a.CreatedAt)
			a.CreatedAt = a.CreatedAt.UTC()
			return a, err
		},
	})}
}

type DiningRepo struct {
	crud[models.DiningOption, models.DiningOptionPatch, *models.DiningOption]
}

func NewDiningRepo(db *pgxpool.Pool, timeout time.Duration) *DiningRepo {
	return &DiningRepo{newCRUD[models.DiningOption, models.DiningOptionPatch, *models.DiningOption](db, timeout, mapping[models.DiningOption]{
		entity:  "dining_option",
		table:   "dining_options",
		columns: []string{"name", "description", "features", "image_url", "created_at"},
		values: func(d models.DiningOption) []interface{} {
			return []interface{}{d.Name, d.Description, strs(d.Features), d.ImageURL, d.CreatedAt}
		},
		scan: func(row pgx.Row) (models.DiningOption, error) {
			var d models.DiningOption
			err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Features, &d.ImageURL, &d.CreatedAt)
			d.CreatedAt = d.CreatedAt.UTC()
			return d, err
		},
	})}
}
