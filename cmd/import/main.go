package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/zemzen/booking-service/internal/config"
	"github.com/zemzen/booking-service/internal/infra/legacy"
	"github.com/zemzen/booking-service/internal/infra/migrator"
	slotBookingRepo "github.com/zemzen/booking-service/internal/infra/storage/slotbooking"
	stayBookingRepo "github.com/zemzen/booking-service/internal/infra/storage/staybooking"
	"github.com/zemzen/booking-service/internal/service/importer"
	"github.com/zemzen/booking-service/migrations"
	"github.com/zemzen/booking-service/pkg/dbmetrics"
	"github.com/zemzen/booking-service/pkg/logger"
)

// Переносит исторические CSV выгрузки (bookings.csv, stay_bookings.csv) в Postgres.
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	slotsPath := flag.String("slots", "", "CSV with wellness bookings")
	staysPath := flag.String("stays", "", "CSV with stay bookings")
	dryRun := flag.Bool("dry-run", false, "validate and report without writing")
	flag.Parse()

	if *slotsPath == "" && *staysPath == "" {
		fmt.Println("Nothing to import: pass -slots and/or -stays")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	if cfg.Database.AutoMigrate {
		mg, err := migrator.NewMigrator(db, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to create migrator: %v", err)
		}
		if err := mg.Run(ctx); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.Wrap(db, nil)
	svc := importer.NewService(
		slotBookingRepo.NewRepository(wrappedDB),
		stayBookingRepo.NewRepository(wrappedDB),
		*dryRun,
		log,
	)

	var report importer.Report

	if *slotsPath != "" {
		bookings, rowErrs, err := readFile(*slotsPath, legacy.ReadSlotBookings)
		if err != nil {
			log.Fatal("Failed to read %s: %v", *slotsPath, err)
		}
		logRowErrors(log, *slotsPath, rowErrs)

		if err := svc.ImportSlots(ctx, bookings, &report); err != nil {
			log.Fatal("Slot import failed: %v", err)
		}
	}

	if *staysPath != "" {
		stays, rowErrs, err := readFile(*staysPath, legacy.ReadStayBookings)
		if err != nil {
			log.Fatal("Failed to read %s: %v", *staysPath, err)
		}
		logRowErrors(log, *staysPath, rowErrs)

		if err := svc.ImportStays(ctx, stays, &report); err != nil {
			log.Fatal("Stay import failed: %v", err)
		}
	}

	log.Info("Import finished (dry-run=%t): slots imported=%d skipped=%d, stays imported=%d skipped=%d",
		*dryRun, report.SlotsImported, report.SlotsSkipped, report.StaysImported, report.StaysSkipped)
}

func readFile[T any](path string, read func(r io.Reader) ([]T, []legacy.RowError, error)) ([]T, []legacy.RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return read(f)
}

func logRowErrors(log *logger.Logger, path string, rowErrs []legacy.RowError) {
	for _, e := range rowErrs {
		log.Warn("%s: %v", path, e)
	}
}
