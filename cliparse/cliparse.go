// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ensonal/EVotingCompany-Web3/registry"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Chairperson  string
	Proposals    []string
	Labels       []registry.Label
	MaxChain     int
}

// LoadEnv reads KEY=value pairs from the given files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ParseFlags validates flags and fills the config from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var proposals string

	fs := flag.NewFlagSet("evoting", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Registry genesis
	fs.StringVar(&cfg.Chairperson, "chairperson", "", "Chairperson identity")
	fs.StringVar(&proposals, "proposals", "", "Comma-separated proposal names")
	fs.IntVar(&cfg.MaxChain, "max-chain", -1, "Maximum delegation hops (0 = number of voters)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.Chairperson == "" {
		cfg.Chairperson = os.Getenv("CHAIRPERSON")
	}
	if cfg.Chairperson == "" {
		return Config{}, errors.New("chairperson required (use -chairperson or CHAIRPERSON env)")
	}

	if proposals == "" {
		proposals = os.Getenv("PROPOSALS")
	}
	cfg.Proposals = splitProposals(proposals)
	if len(cfg.Proposals) == 0 {
		return Config{}, errors.New("at least one proposal required (use -proposals or PROPOSALS env)")
	}
	labels, err := registry.NewLabels(cfg.Proposals)
	if err != nil {
		return Config{}, fmt.Errorf("invalid proposals: %w", err)
	}
	cfg.Labels = labels

	if cfg.MaxChain < 0 {
		cfg.MaxChain = 0
		if s := os.Getenv("MAX_DELEGATION_CHAIN"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return Config{}, errors.New("invalid MAX_DELEGATION_CHAIN env variable")
			}
			cfg.MaxChain = n
		}
	}

	return cfg, nil
}

func splitProposals(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
