package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/seed"
	log "github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "seed.yaml", "Seed file (YAML)")
	api := flag.String("api", "http://127.0.0.1:5000", "API base URL")
	timeout := flag.Duration("timeout", 15*time.Second, "HTTP client timeout")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	users, err := seed.Load(*file)
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	if len(users) == 0 {
		log.Infof("nothing to seed in %s", *file)
		return
	}

	res := seed.NewClient(*api, *timeout).Apply(context.Background(), users)
	log.Infof("seeded %d favorite(s) and %d reservation(s), skipped %d, failed %d",
		res.Favorites, res.Reservations, res.Skipped, res.Failed)
	if res.Failed > 0 {
		os.Exit(2)
	}
}
