package services

import (
	"context"
	"log"

	"lpo-tracker/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// DigestService logs a morning summary of open procurement work and
// runs daily housekeeping.
type DigestService struct {
	requisitionRepo  *repositories.RequisitionRepository
	lpoRepo          *repositories.LPORepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
}

// NewDigestService creates a new digest service
func NewDigestService(
	requisitionRepo *repositories.RequisitionRepository,
	lpoRepo *repositories.LPORepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *DigestService {
	return &DigestService{
		requisitionRepo:  requisitionRepo,
		lpoRepo:          lpoRepo,
		refreshTokenRepo: refreshTokenRepo,
		cron:             cron.New(),
	}
}

// Start schedules the daily digest at 08:30
func (s *DigestService) Start() error {
	_, err := s.cron.AddFunc("30 8 * * *", s.runDigest)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Procurement digest scheduled (daily 08:30)")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *DigestService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("✅ Procurement digest stopped")
}

func (s *DigestService) runDigest() {
	ctx := context.Background()

	pending, err := s.requisitionRepo.CountPending(ctx)
	if err != nil {
		log.Printf("⚠️ Digest: failed to count pending requisitions: %v", err)
		return
	}

	undelivered, err := s.lpoRepo.CountPendingDelivery(ctx)
	if err != nil {
		log.Printf("⚠️ Digest: failed to count undelivered LPOs: %v", err)
		return
	}

	log.Printf("📋 Procurement digest: %d pending requisitions, %d undelivered LPOs", pending, undelivered)

	// Housekeeping: expired refresh tokens are dead weight
	if err := s.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("⚠️ Digest: failed to prune expired refresh tokens: %v", err)
	}
}
