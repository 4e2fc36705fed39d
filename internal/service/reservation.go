package service

import (
	"context"
	"time"

	"library-circulation/internal/domain"
	"library-circulation/internal/repository"
)

type reservationService struct {
	resRepo  repository.ReservationRepository
	userRepo repository.UserRepository
	bookRepo repository.BookRepository
	clock    domain.Clock
}

func NewReservationService(resRepo repository.ReservationRepository, userRepo repository.UserRepository, bookRepo repository.BookRepository, clock domain.Clock) ReservationService {
	return &reservationService{resRepo: resRepo, userRepo: userRepo, bookRepo: bookRepo, clock: clock}
}

func (s *reservationService) GetReservation(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	return s.resRepo.GetByID(ctx, reservationID)
}

func (s *reservationService) ListActiveReservationsForUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	all, err := s.resRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.filterActive(all), nil
}

func (s *reservationService) ListReservationsForUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.resRepo.ListByUser(ctx, userID)
}

func (s *reservationService) ListActiveReservationsForBook(ctx context.Context, bookID string) ([]domain.Reservation, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	all, err := s.resRepo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return s.filterActive(all), nil
}

func (s *reservationService) ListReservationsForBook(ctx context.Context, bookID string) ([]domain.Reservation, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.resRepo.ListByBook(ctx, bookID)
}

func (s *reservationService) ListActiveReservations(ctx context.Context) ([]domain.Reservation, error) {
	open, err := s.resRepo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	return s.filterActive(open), nil
}

func (s *reservationService) ListReservationsByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	return s.resRepo.ListByStatus(ctx, status)
}

// ListExpiredReservations returns reservations whose expiration date has
// passed, including ones not yet swept to EXPIRED.
func (s *reservationService) ListExpiredReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.resRepo.ListExpired(ctx, s.clock.Today())
}

func (s *reservationService) ListReservationsBetween(ctx context.Context, start, end time.Time) ([]domain.Reservation, error) {
	return s.resRepo.ListReservedBetween(ctx, domain.Date(start), domain.Date(end))
}

func (s *reservationService) filterActive(reservations []domain.Reservation) []domain.Reservation {
	today := s.clock.Today()
	var active []domain.Reservation
	for _, res := range reservations {
		if res.IsActive(today) {
			active = append(active, res)
		}
	}
	return active
}
