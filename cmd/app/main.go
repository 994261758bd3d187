package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zvrva/travelbook/config"
	"github.com/zvrva/travelbook/internal/bootstrap"
	"github.com/zvrva/travelbook/internal/codec"
	"github.com/zvrva/travelbook/internal/email"
	"github.com/zvrva/travelbook/internal/repository"
	"github.com/zvrva/travelbook/internal/service/itinerary"
	"github.com/zvrva/travelbook/internal/service/loyalty"
	"github.com/zvrva/travelbook/internal/service/pricing"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "travelbook",
	Short:        "File-backed travel booking management",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			return err
		}

		schema, err := codec.ParseSchema(cfg.Store.Schema)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc := bootstrap.Services{
			Bookings:    repository.NewBookingStore(cfg.Store.BookingsPath, schema),
			Travelers:   repository.NewTravelerStore(cfg.Store.TravelersPath),
			Pricing:     pricing.NewPolicy(cfg.Pricing.Seasons),
			Itineraries: itinerary.NewService(email.NewSender(os.Stdout)),
			Loyalty:     loyalty.NewService(cfg.Loyalty.MinPoints, cfg.Loyalty.DiscountPercent),
		}

		return bootstrap.Run(ctx, svc, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the yaml config")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("travelbook: %v", err)
	}
}
