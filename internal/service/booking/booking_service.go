package booking

import (
	"context"
	"errors"
	"time"

	"github.com/explorekashmir/tours/internal/domain"
	"github.com/explorekashmir/tours/internal/kafka"
	"github.com/explorekashmir/tours/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, token string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, token string) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
	ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error)
}

type Cache interface {
	AcquireSlotHold(ctx context.Context, tourID int64, email string, ttl time.Duration) (bool, error)
	ReleaseSlotHold(ctx context.Context, tourID int64, email string) error
	GetTours(ctx context.Context, destinationID int64) ([]domain.Tour, error)
	SetTours(ctx context.Context, destinationID int64, tours []domain.Tour) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	tours              repository.TourRepository
	cache              Cache
	producer           Producer
	log                zerolog.Logger
	bookingTopic       string
	notificationsTopic string
	holdTTL            time.Duration
}

type CreateBookingInput struct {
	TourID int64  `json:"tour_id"`
	Seats  int    `json:"seats"`
	Email  string `json:"email"`
	UserID int64  `json:"-"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	tours repository.TourRepository,
	cache Cache,
	producer Producer,
	log zerolog.Logger,
	bookingTopic string,
	holdTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		tours:        tours,
		cache:        cache,
		producer:     producer,
		log:          log,
		bookingTopic: bookingTopic,
		holdTTL:      holdTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.Seats <= 0 {
		return nil, errors.New("seats must be positive")
	}
	if input.Email == "" {
		return nil, errors.New("email is required")
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSlotHold(ctx, input.TourID, input.Email, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrHoldAlreadyTaken
		}
		locked = true
	}

	booking := &domain.Booking{
		TourID:    input.TourID,
		UserID:    input.UserID,
		Seats:     input.Seats,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.holdTTL),
		Email:     input.Email,
	}

	if err := s.bookings.CreatePending(ctx, booking); err != nil {
		if locked {
			_ = s.cache.ReleaseSlotHold(ctx, input.TourID, input.Email)
		}
		return nil, err
	}

	booking.Status = domain.BookingStatusPending
	if err := s.publish(ctx, "booking_created", booking); err != nil {
		s.log.Warn().Err(err).Str("token", booking.Token).Msg("failed to publish booking_created event")
	}
	return booking, nil
}

func (s *BookingService) ConfirmBooking(ctx context.Context, token string) (*domain.Booking, error) {
	current, err := s.bookings.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	updated, err := s.bookings.UpdateStatus(ctx, token, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, "booking_confirmed", updated); err != nil {
		s.log.Warn().Err(err).Str("token", updated.Token).Msg("failed to publish booking_confirmed event")
	}
	if s.cache != nil {
		_ = s.cache.ReleaseSlotHold(ctx, updated.TourID, updated.Email)
	}
	return updated, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, token string) (*domain.Booking, error) {
	current, err := s.bookings.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled || current.Status == domain.BookingStatusExpired {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, token, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	_ = s.tours.ReleaseSlots(ctx, updated.TourID, updated.Seats)
	if err := s.publish(ctx, "booking_cancelled", updated); err != nil {
		s.log.Warn().Err(err).Str("token", updated.Token).Msg("failed to publish booking_cancelled event")
	}
	if s.cache != nil {
		_ = s.cache.ReleaseSlotHold(ctx, updated.TourID, updated.Email)
	}
	return updated, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	deadline := time.Now()
	expired, err := s.bookings.ExpirePendingBefore(ctx, deadline)
	if err != nil {
		return nil, err
	}
	for _, b := range expired {
		_ = s.tours.ReleaseSlots(ctx, b.TourID, b.Seats)
		_ = s.publish(ctx, "booking_expired", &b)
		if s.cache != nil {
			_ = s.cache.ReleaseSlotHold(ctx, b.TourID, b.Email)
		}
	}
	return expired, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:      eventType,
		Token:     booking.Token,
		TourID:    booking.TourID,
		Seats:     booking.Seats,
		Email:     booking.Email,
		Status:    string(booking.Status),
		ExpiresAt: booking.ExpiresAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Token, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Token, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
