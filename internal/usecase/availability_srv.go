package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"seat-booking/internal/data/repository"
	"seat-booking/internal/dto/request"
	"seat-booking/internal/dto/response"
	"seat-booking/pkg/messaging"
	"seat-booking/pkg/seatqueue"
	"seat-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidHallID = errors.New("invalid hall ID")
	ErrHallNotFound  = errors.New("hall not found")
	ErrValidation    = errors.New("validation failed")
)

type AvailabilityService interface {
	// LoadHall replaces the hall queue with the hall's free seats from the store.
	LoadHall(ctx context.Context, hallID string) (*response.AvailabilityResponse, error)
	ReleaseSeat(ctx context.Context, hallID string, req *request.ReleaseSeatRequest) (*response.AvailabilityResponse, error)
	// ReserveSeat hands out the longest-waiting seat. An empty hall is not an error.
	ReserveSeat(ctx context.Context, hallID string) (*response.ReservationResponse, error)
	AvailableCount(ctx context.Context, hallID string) (*response.AvailabilityResponse, error)
}

// hallQueue serializes every access to one hall's queue.
type hallQueue struct {
	mu    sync.Mutex
	seats *seatqueue.SeatAvailability
}

type availabilityService struct {
	repo      *repository.Repository
	publisher messaging.Publisher
	log       *zap.Logger

	mu    sync.Mutex // guards halls
	halls map[uuid.UUID]*hallQueue
}

func NewAvailabilityService(repo *repository.Repository, publisher messaging.Publisher, log *zap.Logger) AvailabilityService {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &availabilityService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "availability")),
		halls:     make(map[uuid.UUID]*hallQueue),
	}
}

func (s *availabilityService) LoadHall(ctx context.Context, hallID string) (*response.AvailabilityResponse, error) {
	hallUUID, err := parseHallID(hallID)
	if err != nil {
		return nil, err
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallUUID)
	if err != nil {
		return nil, fmt.Errorf("load hall: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("hall %s: %w", hallID, ErrHallNotFound)
	}

	// Hold the hall lock across the read so no release lands between
	// the query and the swap.
	hq := s.queue(hallUUID, true)
	hq.mu.Lock()
	seats, err := s.repo.Seat.FindAvailableSeats(ctx, hallUUID)
	if err != nil {
		hq.mu.Unlock()
		s.log.Error("Failed to load available seats", zap.Error(err), zap.String("hall_id", hallID))
		return nil, fmt.Errorf("load available seats: %w", err)
	}

	fresh := seatqueue.New()
	for _, seat := range seats {
		fresh.Append(seat.SeatNumber)
	}
	hq.seats = fresh
	count := hq.seats.AvailableCount()
	hq.mu.Unlock()

	s.log.Info("Hall availability loaded",
		zap.String("hall_id", hallID),
		zap.String("hall_name", hall.Name),
		zap.Int("available_count", count),
	)

	return &response.AvailabilityResponse{HallID: hallID, AvailableCount: count}, nil
}

func (s *availabilityService) ReleaseSeat(ctx context.Context, hallID string, req *request.ReleaseSeatRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Release seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	hallUUID, err := parseHallID(hallID)
	if err != nil {
		return nil, err
	}
	seatID := *req.SeatID

	// The hall queue is only created once the store accepted the seat.
	// A copy queued twice (release racing LoadHall) is caught by TakeSeat.
	if err := s.repo.Seat.UpdateAvailability(ctx, hallUUID, seatID, true); err != nil {
		return nil, fmt.Errorf("release seat %s: %w", seatID, err)
	}

	hq := s.queue(hallUUID, true)
	hq.mu.Lock()
	hq.seats.Append(seatID)
	count := hq.seats.AvailableCount()
	hq.mu.Unlock()

	s.log.Info("Seat released",
		zap.String("hall_id", hallID),
		zap.String("seat_id", seatID),
		zap.Int("available_count", count),
	)
	s.publish(ctx, messaging.RoutingSeatReleased, hallID, seatID, count)

	return &response.AvailabilityResponse{HallID: hallID, AvailableCount: count}, nil
}

func (s *availabilityService) ReserveSeat(ctx context.Context, hallID string) (*response.ReservationResponse, error) {
	hallUUID, err := parseHallID(hallID)
	if err != nil {
		return nil, err
	}

	hq := s.queue(hallUUID, false)
	if hq == nil {
		return &response.ReservationResponse{HallID: hallID}, nil
	}

	hq.mu.Lock()
	seatID, ok, err := s.reserveLocked(ctx, hallUUID, hq.seats)
	count := hq.seats.AvailableCount()
	hq.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Debug("No seats available", zap.String("hall_id", hallID))
		return &response.ReservationResponse{HallID: hallID}, nil
	}

	s.log.Info("Seat reserved",
		zap.String("hall_id", hallID),
		zap.String("seat_id", seatID),
		zap.Int("available_count", count),
	)
	s.publish(ctx, messaging.RoutingSeatReserved, hallID, seatID, count)

	return &response.ReservationResponse{
		HallID:         hallID,
		Reserved:       true,
		SeatID:         &seatID,
		AvailableCount: count,
	}, nil
}

// reserveLocked takes the head seat in the store before popping it, so a
// store failure leaves the queue order intact. Heads that vanished from the
// store or were already taken through an earlier queued copy are dropped and
// the next one is tried.
func (s *availabilityService) reserveLocked(ctx context.Context, hallID uuid.UUID, seats *seatqueue.SeatAvailability) (string, bool, error) {
	for {
		seatID, ok := seats.Peek()
		if !ok {
			return "", false, nil
		}

		err := s.repo.Seat.TakeSeat(ctx, hallID, seatID)
		if errors.Is(err, repository.ErrSeatNotFound) || errors.Is(err, repository.ErrSeatTaken) {
			seats.Reserve()
			s.log.Warn("Dropped stale seat from queue",
				zap.String("hall_id", hallID.String()),
				zap.String("seat_id", seatID),
				zap.Error(err))
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("reserve seat %s: %w", seatID, err)
		}

		seats.Reserve()
		return seatID, true, nil
	}
}

func (s *availabilityService) AvailableCount(ctx context.Context, hallID string) (*response.AvailabilityResponse, error) {
	hallUUID, err := parseHallID(hallID)
	if err != nil {
		return nil, err
	}

	count := 0
	if hq := s.queue(hallUUID, false); hq != nil {
		hq.mu.Lock()
		count = hq.seats.AvailableCount()
		hq.mu.Unlock()
	}

	return &response.AvailabilityResponse{HallID: hallID, AvailableCount: count}, nil
}

// queue returns the hall's queue, creating an empty one when create is set.
func (s *availabilityService) queue(hallID uuid.UUID, create bool) *hallQueue {
	s.mu.Lock()
	defer s.mu.Unlock()

	hq, ok := s.halls[hallID]
	if !ok && create {
		hq = &hallQueue{seats: seatqueue.New()}
		s.halls[hallID] = hq
	}
	return hq
}

func (s *availabilityService) publish(ctx context.Context, routingKey, hallID, seatID string, count int) {
	event := messaging.SeatEvent{
		HallID:         hallID,
		SeatID:         seatID,
		AvailableCount: count,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		s.log.Warn("Failed to publish seat event",
			zap.Error(err),
			zap.String("routing_key", routingKey),
			zap.String("hall_id", hallID),
			zap.String("seat_id", seatID),
		)
	}
}

func parseHallID(hallID string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(hallID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %v", ErrInvalidHallID, hallID, err)
	}
	return id, nil
}
