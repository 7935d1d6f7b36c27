package scheduler

import (
	"context"
	"errors"
	"time"

	"ticketing-rewards/internal/core/ports"
	"ticketing-rewards/pkg/apperror"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const sweepTimeout = 5 * time.Minute

// Sweep periodically offers rewards to users who became eligible without
// triggering a generate call themselves. Each candidate goes through the
// same issuance path as the API, so every eligibility rule still applies.
type Sweep struct {
	bookingRepo ports.BookingRepository
	issuanceSvc ports.RewardIssuanceService
	window      time.Duration
	schedule    string
	cron        *cron.Cron
	log         zerolog.Logger
}

// NewSweep creates a sweep job with the given cron schedule.
func NewSweep(
	bookingRepo ports.BookingRepository,
	issuanceSvc ports.RewardIssuanceService,
	window time.Duration,
	schedule string,
	log zerolog.Logger,
) *Sweep {
	return &Sweep{
		bookingRepo: bookingRepo,
		issuanceSvc: issuanceSvc,
		window:      window,
		schedule:    schedule,
		cron:        cron.New(),
		log:         log,
	}
}

// Start registers the cron entry and begins scheduling.
func (s *Sweep) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		s.RunOnce(ctx)
	}); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", s.schedule).Msg("eligibility sweep started")
	return nil
}

// Stop halts scheduling and returns a context that is done once any running
// job has finished.
func (s *Sweep) Stop() context.Context {
	return s.cron.Stop()
}

// RunOnce performs a single sweep pass: every user with booking activity in
// the trailing window is offered a reward. Ineligible users are expected and
// logged at debug level only.
func (s *Sweep) RunOnce(ctx context.Context) {
	since := time.Now().UTC().Add(-s.window)

	userIDs, err := s.bookingRepo.ActiveUserIDsSince(ctx, since)
	if err != nil {
		s.log.Error().Err(err).Msg("sweep: failed to list active users")
		return
	}

	var issued, skipped, failed int
	for _, userID := range userIDs {
		reward, err := s.issuanceSvc.IssueIfEligible(ctx, userID)
		if err != nil {
			if isNotEligible(err) {
				skipped++
				s.log.Debug().Err(err).Str("user_id", userID.String()).Msg("sweep: user not eligible")
				continue
			}
			failed++
			s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("sweep: issuance failed")
			continue
		}
		issued++
		s.log.Info().
			Str("user_id", userID.String()).
			Str("reward_id", reward.ID.String()).
			Msg("sweep: reward issued")
	}

	s.log.Info().
		Int("candidates", len(userIDs)).
		Int("issued", issued).
		Int("skipped", skipped).
		Int("failed", failed).
		Msg("sweep completed")
}

// isNotEligible reports whether the error is an expected eligibility verdict
// rather than an infrastructure failure.
func isNotEligible(err error) bool {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Code {
	case "ELG_001", "ELG_002", "ELG_003":
		return true
	}
	return false
}
