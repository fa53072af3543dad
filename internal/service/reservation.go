package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository"
)

type ReservationRepository interface {
	FindAll(ctx context.Context) ([]domain.Reservation, error)
	Create(ctx context.Context, reservation domain.Reservation) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type ReservationService struct {
	repo ReservationRepository
	now  func() time.Time
}

func NewReservationService(repo ReservationRepository) *ReservationService {
	return &ReservationService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *ReservationService) GetAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return reservations, nil
}

// CreateReservation validates reservationDate before touching the store: it
// must parse as an RFC 3339 timestamp and lie strictly after the current
// instant.
func (s *ReservationService) CreateReservation(ctx context.Context, reservation domain.Reservation, reservationDate string) error {
	parsed, err := time.Parse(time.RFC3339, reservationDate)
	if err != nil {
		return domain.ErrInvalidReservationDate
	}
	if !parsed.After(s.now()) {
		return domain.ErrInvalidReservationDate
	}

	reservation.ReservationDate = parsed

	if err := s.repo.Create(ctx, reservation); err != nil {
		return fmt.Errorf("s.repo.Create -> %w", err)
	}

	return nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return domain.ErrInvalidReservationID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrInvalidReservationID
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
