package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository/dao"
)

type ReservationDAO interface {
	FindAll(ctx context.Context) ([]dao.Reservation, error)
	Insert(ctx context.Context, reservation dao.Reservation) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(found))
	for _, res := range found {
		reservations = append(reservations, r.daoToDomain(res))
	}

	return reservations, nil
}

func (r *ReservationRepository) Create(ctx context.Context, reservation domain.Reservation) error {
	err := r.dao.Insert(ctx, dao.Reservation{
		FirstName:       reservation.FirstName,
		LastName:        reservation.LastName,
		PhoneNumber:     reservation.PhoneNumber,
		Email:           reservation.Email,
		Message:         reservation.Message,
		GuestAmount:     reservation.GuestAmount,
		ReservationDate: reservation.ReservationDate,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uint) error {
	err := r.dao.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ReservationRepository) Exists(ctx context.Context, id uint) (bool, error) {
	exists, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *ReservationRepository) daoToDomain(res dao.Reservation) domain.Reservation {
	return domain.Reservation{
		ID:              res.ID,
		FirstName:       res.FirstName,
		LastName:        res.LastName,
		PhoneNumber:     res.PhoneNumber,
		Email:           res.Email,
		Message:         res.Message,
		GuestAmount:     res.GuestAmount,
		ReservationDate: res.ReservationDate,
	}
}
