package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/imovelhub/rent-billing/internal/config"
	"github.com/imovelhub/rent-billing/internal/repository"
	"github.com/imovelhub/rent-billing/internal/service"
)

func main() {
	log.Println("Starting billing scheduler...")

	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	chargeRepo := repository.NewChargeRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// The sweep only flips statuses; no notifier or cache is needed here
	billingService := service.NewBillingService(chargeRepo, paymentRepo, nil, nil, cfg.BillingParams())

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone: %v", err)
	}

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	// Daily job to mark overdue charges (runs at midnight by default)
	_, err = c.AddFunc(cfg.Scheduler.OverdueSweepSpec, func() {
		log.Println("Running overdue charge sweep...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		updated, err := billingService.MarkOverdueCharges(ctx, time.Now())
		if err != nil {
			log.Printf("Overdue charge sweep failed: %v", err)
			return
		}

		log.Printf("Overdue charge sweep finished: %d charge(s) marked overdue", updated)
	})
	if err != nil {
		log.Fatalf("Error scheduling overdue charge sweep: %v", err)
	}

	// Start the scheduler
	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}
