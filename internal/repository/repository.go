package repository

// Repository bundles one repository per entity kind. Both backends build it;
// the process picks one at startup from configuration.
type Repository struct {
	Rooms        RoomRepository
	Testimonials TestimonialRepository
	Activities   ActivityRepository
	Dining       DiningRepository
	Media        MediaRepository
	Documents    ContentRepository
	Bookings     BookingRepository
	Contacts     ContactRepository
	Newsletter   NewsletterRepository
	Submissions  SubmissionRepository

	closer func()
}

// New returns a Repository whose Close calls closer. closer may be nil.
func New(closer func()) *Repository {
	return &Repository{closer: closer}
}

func (r *Repository) Close() {
	if r.closer != nil {
		r.closer()
	}
}
