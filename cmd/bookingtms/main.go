package main

import (
	"log"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/app"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
