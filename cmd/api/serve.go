package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/logging"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/media"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/service"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/transport/mail"
	transport "github.com/njprem/TravelBand_APP_BackEnd/internal/transport/http"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/util"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		docsDir, _ := cmd.Flags().GetString("docs-dir")
		shutdownTimeout, _ := cmd.Flags().GetDuration("shutdown-timeout")

		cfg, closeLogs, err := loadRuntime()
		if err != nil {
			return err
		}
		defer closeLogs()
		log := logging.WithComponent("serve")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openDatastore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		var objectStorage ports.ObjectStorage
		minioStorage, err := openStorage(ctx, cfg)
		if err != nil {
			return err
		}
		if minioStorage != nil {
			objectStorage = minioStorage
		} else {
			log.Info().Msg("object storage not configured; thumbnail uploads disabled")
		}

		var mailer service.AvailabilityMailer
		if cfg.SMTP.Enabled() {
			mailer = mail.NewAvailabilityMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, cfg.SMTP.UseTLS)
		} else {
			log.Info().Msg("smtp not configured; availability requests are not mailed")
		}

		var jwt *util.JWTManager
		if cfg.JWTSecret != "" {
			jwt = util.NewJWTManager(cfg.JWTSecret, 24*time.Hour)
		}

		authz := service.NewAuthorizationService(store.Spotters())
		bands := service.NewTravelBandService(store, objectStorage, media.NewInspector(cfg.ThumbnailMaxBytes, cfg.ThumbnailMaxDimension), service.TravelBandServiceConfig{
			DefaultThumbnailURL:       cfg.DefaultTravelBandThumbnail,
			DefaultFolderThumbnailURL: cfg.DefaultFolderThumbnail,
			ThumbnailBucket:           cfg.MinIO.BucketThumbnails,
			ThumbnailMaxDimension:     cfg.ThumbnailMaxDimension,
		})
		folders := service.NewFolderService(store, service.FolderServiceConfig{CountConcurrency: cfg.FolderCountConcurrency})
		spotters := service.NewSpotterService(store)

		e, api := transport.NewRouter(transport.RouterConfig{
			AllowOrigins:  cfg.AllowOrigins,
			SpotterHeader: cfg.SpotterHeader,
			JWT:           jwt,
		})
		transport.RegisterSwagger(e, docsDir)
		transport.RegisterActivities(api, service.NewActivityService(store, mailer), service.NewShareService(store))
		transport.RegisterTravelBands(api, authz, bands, folders, spotters, transport.TravelBandFeatures{Thumbnails: objectStorage != nil})
		transport.RegisterReactions(api, service.NewReactionService(store))
		transport.RegisterSpotters(api, spotters, bands, service.NewBookingService(store))

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("port", cfg.Port).Str("datastore", cfg.Datastore).Msg("listening")
			if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("docs-dir", "docs", "Directory holding swagger.yaml")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests")
}
