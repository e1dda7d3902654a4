package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukydev/fleet-ops/internal/config"
	"github.com/ukydev/fleet-ops/internal/db"
	"github.com/ukydev/fleet-ops/internal/export"
	"github.com/ukydev/fleet-ops/internal/handlers"
	"github.com/ukydev/fleet-ops/internal/lifecycle"
	"github.com/ukydev/fleet-ops/internal/models"
	"github.com/ukydev/fleet-ops/internal/store"
)

const (
	version = "0.1.0"
	appName = "fleetd"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Fleet operational-state tracker",
		Long: `Fleetd tracks the operational state of a vehicle fleet: trips,
drivers, maintenance and costs. State lives in memory; an optional
MongoDB archive persists snapshots across restarts.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd(), exportCmd(), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, version)
		},
	}
}

func serveCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if seed {
				cfg.Seed = true
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "Load demo fixtures at boot")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	cfg.ConfigureLogging()

	st := store.New()
	var archive *db.Archive

	if cfg.MongoURI != "" {
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return fmt.Errorf("connecting to mongo: %w", err)
		}
		defer client.Disconnect(context.Background())
		archive = db.NewArchive(client.Database(cfg.MongoDatabase).Collection("state"))

		snap, ok, err := archive.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading archived state: %w", err)
		}
		if ok {
			st.Load(snap)
			log.WithFields(log.Fields{
				"vehicles": len(snap.Vehicles),
				"trips":    len(snap.Trips),
			}).Info("restored archived state")
		}
	}

	if cfg.Seed && len(st.Vehicles()) == 0 {
		seedStore(st)
		log.Info("loaded demo fixtures")
	}

	engine := lifecycle.NewEngine(st, nil, nil)
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handlers.New(engine, st).Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server shutdown")
	}

	if archive != nil {
		if err := archive.Save(shutdownCtx, st.Snapshot()); err != nil {
			log.WithError(err).Warn("archiving state on shutdown")
		} else {
			log.Info("archived state")
		}
	}
	return nil
}

func exportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every CSV view of the demo fixtures to a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New()
			seedStore(st)
			return exportAll(st, outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "Output directory")
	return cmd
}

func exportAll(st *store.Store, outDir string) error {
	snap := st.Snapshot()
	for _, view := range export.Views {
		path := filepath.Join(outDir, view+".csv")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := export.Write(f, view, snap); err != nil {
			f.Close()
			return fmt.Errorf("exporting %s: %w", view, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.WithField("path", path).Info("wrote export")
	}
	return nil
}

func seedStore(st *store.Store) {
	_ = st.Update(func(tx *store.Tx) error {
		for _, v := range models.SeedVehicles() {
			tx.PutVehicle(v)
		}
		for _, d := range models.SeedDrivers() {
			tx.PutDriver(d)
		}
		for _, t := range models.SeedTrips() {
			tx.PutTrip(t)
		}
		for _, m := range models.SeedMaintenanceLogs() {
			tx.PutMaintenanceLog(m)
		}
		for _, f := range models.SeedFuelLogs() {
			tx.PutFuelLog(f)
		}
		for _, e := range models.SeedExpenses() {
			tx.PutExpense(e)
		}
		return nil
	})
}
