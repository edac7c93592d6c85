package booking

import (
	"context"
	"errors"
	"time"

	"lendshare/internal/domain"
	"lendshare/internal/metrics"
	"lendshare/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingStore
	items    ItemCatalog
	users    UserDirectory
	log      zerolog.Logger

	// now is injected so temporal classification stays deterministic in tests.
	now func() time.Time
}

func NewService(bookings BookingStore, items ItemCatalog, users UserDirectory, log zerolog.Logger) *Service {
	return &Service{
		bookings: bookings,
		items:    items,
		users:    users,
		log:      log,
		now:      time.Now,
	}
}

// Create validates and persists a new booking request in WAITING status.
func (s *Service) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	item, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.OwnerID == booker.ID {
		return nil, ErrOwnBooking
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if !req.End.After(req.Start) {
		return nil, ErrInvalidPeriod
	}

	// Any existing booking of the item blocks an overlapping window, rejected ones
	// included.
	existing, err := s.bookings.GetByItemID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if overlaps(req.Start, req.End, other.Start, other.End) {
			metrics.IncBookingConflict()
			return nil, ErrTimeConflict
		}
	}

	b := &domain.Booking{
		ItemID:   item.ID,
		BookerID: booker.ID,
		Start:    req.Start,
		End:      req.End,
		Status:   domain.BookingWaiting,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		// Two creates can both pass the check above; the exclusion constraint is
		// the backstop that keeps the no-double-booking invariant.
		if repository.IsOverlapViolation(err) {
			metrics.IncBookingConflict()
			return nil, ErrTimeConflict
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	s.log.Info().
		Int64("booking_id", b.ID).
		Int64("item_id", item.ID).
		Int64("booker_id", booker.ID).
		Time("start", b.Start).
		Time("end", b.End).
		Msg("booking requested")

	return b, nil
}

// Decide lets the item owner approve or reject a WAITING booking. Anyone else gets a
// not-found answer.
func (s *Service) Decide(ctx context.Context, requesterID, bookingID int64, approved bool) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, b.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if item.OwnerID != requesterID {
		return nil, ErrBookingNotFound
	}

	if b.Status.Decided() {
		return nil, ErrAlreadyDecided
	}

	status := domain.BookingRejected
	if approved {
		status = domain.BookingApproved
	}
	if err := s.bookings.UpdateStatus(ctx, b.ID, status); err != nil {
		return nil, err
	}
	b.Status = status

	metrics.IncBookingDecision(string(status))
	s.log.Info().
		Int64("booking_id", b.ID).
		Int64("owner_id", requesterID).
		Str("status", string(status)).
		Msg("booking decided")

	return b, nil
}

// GetByID returns the booking when the requester is its booker or the item's owner.
func (s *Service) GetByID(ctx context.Context, requesterID, bookingID int64) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, b.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if requesterID != b.BookerID && requesterID != item.OwnerID {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// List returns one page of the user's bookings, as booker or as item owner, filtered
// by state and sorted by window start descending.
func (s *Service) List(ctx context.Context, userID int64, asOwner bool, state State, from, size int) ([]domain.Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if size <= 0 || from < 0 {
		return nil, ErrInvalidPaging
	}
	offset := (from / size) * size

	var (
		rows []domain.Booking
		err  error
	)
	if asOwner {
		rows, err = s.bookings.GetByOwnerID(ctx, userID, offset, size)
	} else {
		rows, err = s.bookings.GetByBookerID(ctx, userID, offset, size)
	}
	if err != nil {
		return nil, err
	}

	return filterByState(rows, state, s.now())
}

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}
