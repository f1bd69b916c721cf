// Package main is the CarPal demo entry point. Its sole responsibility is
// wiring dependencies together, seeding the sample data, and driving the
// scripted invitation flow once so the whole handshake can be watched in
// the logs. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LylesZhang/Protothon-2026/internal/config"
	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/ids"
	"github.com/LylesZhang/Protothon-2026/internal/logger"
	"github.com/LylesZhang/Protothon-2026/internal/repo"
	"github.com/LylesZhang/Protothon-2026/internal/schedule"
	"github.com/LylesZhang/Protothon-2026/internal/search"
	"github.com/LylesZhang/Protothon-2026/internal/seed"
	"github.com/LylesZhang/Protothon-2026/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LoggerLevel, cfg.LoggerFormat)
	defer func() { _ = log.Sync() }()

	log.Info("carpal starting",
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
		zap.String("current_user", cfg.CurrentUser),
	)

	gen, err := ids.NewGenerator(cfg.SnowflakeMachineID)
	if err != nil {
		log.Fatal("id generator init failed", zap.Error(err))
	}

	// Repos and services. Everything is in-memory; state lives for the
	// lifetime of the process and is re-seeded below.
	trips := repo.NewTripRepo()
	conversations := repo.NewConversationRepo()
	invitations := repo.NewInvitationRepo()
	accepted := repo.NewAcceptedTripRepo()

	sched := schedule.New(log)
	defer sched.Stop()

	messages := service.NewMessageService(conversations, gen, seed.Contacts(), log)
	tripSvc := service.NewTripService(trips)
	follows := service.NewFollowService(trips, messages, seed.FollowedUsers(), log)
	saved := service.NewSavedTripsService(trips)
	invSvc := service.NewInvitationService(invitations, accepted, trips, messages, sched, cfg.FinishPromptDelay, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-stop
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := seed.Apply(ctx, cfg.CurrentUser, trips, accepted, messages); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
	log.Info("sample data seeded")

	if err := runDemo(ctx, cfg, log, tripSvc, follows, saved, invSvc, messages); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("demo interrupted")
			return
		}
		log.Fatal("demo failed", zap.Error(err))
	}
	log.Info("demo complete")
}

// runDemo exercises the catalog, search, and the full invitation handshake:
// send → accept → finish prompt → confirm → rate.
func runDemo(
	ctx context.Context,
	cfg config.Config,
	log *zap.Logger,
	tripSvc *service.TripService,
	follows *service.FollowService,
	saved *service.SavedTripsService,
	invSvc *service.InvitationService,
	messages *service.MessageService,
) error {
	// Browse and search the catalog.
	results, err := tripSvc.Search(ctx, search.Criteria{Destination: "NYC"})
	if err != nil {
		return err
	}
	for _, trip := range results {
		log.Info("search hit", zap.String("title", trip.Title), zap.String("destination", trip.Destination))
	}

	feed, err := follows.FollowingTrips(ctx)
	if err != nil {
		return err
	}
	log.Info("following feed", zap.Int("trips", len(feed)))
	if len(feed) > 0 {
		saved.ToggleSave(feed[0].ID)
	}

	// Invite Sarah Chen to the user's NYC trip and walk the handshake.
	myPosts, err := tripSvc.MyPosts(ctx, cfg.CurrentUser)
	if err != nil {
		return err
	}
	if len(myPosts) == 0 {
		return fmt.Errorf("no posts seeded for %s", cfg.CurrentUser)
	}
	trip := myPosts[0]
	const partner = "Sarah Chen"

	if _, err := messages.ShareTripLink(ctx, partner, "You", cfg.LinkScheme, trip.ID); err != nil {
		return err
	}

	inv, err := invSvc.SendInvitation(ctx, trip, partner, partner)
	if err != nil {
		return err
	}
	if _, err := invSvc.AcceptInvitation(ctx, inv.ID); err != nil {
		return err
	}

	// The finish prompt arrives after the configured delay; wait for the
	// status to advance before confirming.
	if err := waitForStatus(ctx, invSvc, trip.ID, domain.StatusWaitingConfirmation, cfg.FinishPromptDelay*3); err != nil {
		return err
	}
	if err := invSvc.ConfirmTripFinished(ctx, trip.ID, partner); err != nil {
		return err
	}
	if err := invSvc.SubmitRating(ctx, 5, trip.ID, partner, partner); err != nil {
		return err
	}

	// Replay the conversation so the whole exchange is visible.
	msgs, err := messages.Messages(ctx, partner)
	if err != nil {
		return err
	}
	for _, m := range msgs {
		log.Info("chat",
			zap.String("sender", m.Sender),
			zap.String("kind", string(m.Payload.Kind())),
			zap.String("content", m.Content),
		)
	}
	return nil
}

// waitForStatus polls until some accepted-trip record for the given trip
// reaches the wanted status, the timeout passes, or ctx is canceled.
func waitForStatus(ctx context.Context, invSvc *service.InvitationService, tripID uuid.UUID, want domain.TripStatus, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		trips, err := invSvc.AcceptedTrips(ctx)
		if err != nil {
			return err
		}
		for _, at := range trips {
			if at.TripID == tripID && at.Status == want {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out waiting for status %s", want)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
