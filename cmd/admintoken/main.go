// Command admintoken prints a signed admin token for the review API, using
// the same configuration as the server.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/diljithmon170/GK-Group/config"
	"github.com/diljithmon170/GK-Group/internal/auth"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("subject", "", "Operator identity recorded in the token (required)")
	ttl := flag.Duration("ttl", 0, "Token lifetime; defaults to ADMIN_TOKEN_TTL_HOURS")
	flag.Parse()

	_ = godotenv.Load()
	log := logger.GetLogger()
	defer func() { _ = logger.Close() }()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: admintoken -subject ops@example.com [-ttl 12h]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lifetime := *ttl
	if lifetime == 0 {
		lifetime = time.Duration(cfg.Admin.TokenTTLHours) * time.Hour
	}

	token, err := auth.IssueAdminToken(cfg.Admin.JWTSecret, cfg.Admin.Issuer, *subject, lifetime)
	if err != nil {
		log.Fatalf("Failed to issue admin token: %v", err)
	}

	log.Infow("Issued admin token", "subject", *subject, "expires_in", lifetime.String())
	fmt.Println(token)
}
