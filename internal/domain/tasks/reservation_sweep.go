package tasks

import (
	"context"
	"time"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
)

// SweepInterval is how often reservation statuses are reconciled with the
// clock.
const SweepInterval = 10 * time.Second

// ReservationSweeper periodically advances reservation statuses
// (reserved -> ongoing -> finished) to match wall-clock time.
type ReservationSweeper struct {
	Reservations services.InterfaceReservationService
	Interval     time.Duration
}

func NewReservationSweeper(reservations services.InterfaceReservationService) *ReservationSweeper {
	return &ReservationSweeper{
		Reservations: reservations,
		Interval:     SweepInterval,
	}
}

// Start runs the sweep loop until ctx is cancelled. One pass runs
// immediately so a restart does not leave stale statuses for a full
// interval.
func (s *ReservationSweeper) Start(ctx context.Context) {
	logger.Info("reservation sweeper started, interval %s", s.Interval)

	s.sweep()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("reservation sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *ReservationSweeper) sweep() {
	moved, err := s.Reservations.SweepStatuses(time.Now())
	if err != nil {
		logger.Error("reservation status sweep failed: %v", err)
		return
	}
	if moved > 0 {
		logger.Debug("reservation sweep advanced %d statuses", moved)
	}
}
