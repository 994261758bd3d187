// Command compact reloads the backing files with the skip-and-warn policy and
// rewrites them, shedding malformed lines and normalizing the encoding.
package main

import (
	"context"
	"log"
	"os"

	"github.com/zvrva/travelbook/config"
	"github.com/zvrva/travelbook/internal/codec"
	"github.com/zvrva/travelbook/internal/repository"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	schema, err := codec.ParseSchema(cfg.Store.Schema)
	if err != nil {
		log.Fatalf("parse schema: %v", err)
	}

	ctx := context.Background()

	bookings := repository.NewBookingStore(cfg.Store.BookingsPath, schema)
	if err := bookings.Load(ctx); err != nil {
		log.Fatalf("load bookings: %v", err)
	}
	if err := bookings.Save(ctx); err != nil {
		log.Fatalf("save bookings: %v", err)
	}
	log.Printf("bookings: kept %d records, dropped %d malformed lines", bookings.Len(), bookings.Skipped())

	travelers := repository.NewTravelerStore(cfg.Store.TravelersPath)
	if err := travelers.Load(ctx); err != nil {
		log.Fatalf("load travelers: %v", err)
	}
	if err := travelers.Save(ctx); err != nil {
		log.Fatalf("save travelers: %v", err)
	}
	log.Printf("travelers: kept %d records", travelers.Len())
}
