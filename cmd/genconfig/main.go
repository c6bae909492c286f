// Command genconfig writes the effective configuration (defaults plus
// environment) to config/config.<env>.yaml, for use with CONFIG_FILE.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diljithmon170/GK-Group/config"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const redacted = "<set via environment>"

func main() {
	outDir := flag.String("dir", "config", "Directory to write the file into")
	withSecrets := flag.Bool("include-secrets", false, "Write secrets instead of placeholders")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if !*withSecrets {
		redactSecrets(cfg)
	}

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling YAML: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outDir, fmt.Sprintf("config.%s.yaml", cfg.Server.Environment))
	if err := os.WriteFile(filename, yamlData, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s\n", filename)
}

func redactSecrets(cfg *config.Config) {
	if cfg.Database.Password != "" {
		cfg.Database.Password = redacted
	}
	if cfg.Redis.Password != "" {
		cfg.Redis.Password = redacted
	}
	if cfg.Email.ResendAPIKey != "" {
		cfg.Email.ResendAPIKey = redacted
	}
	cfg.Admin.JWTSecret = redacted
}
