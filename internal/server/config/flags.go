package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/admingate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port to bind the HTTP endpoint
//	-d string   PostgreSQL DSN (empty keeps the in-memory user store)
//	-k string   secret key for signing bearer tokens
//	-s int      session validity in seconds
//	-m bool     use the mock credential verifier
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-s", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to bind the HTTP endpoint")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret key for signing bearer tokens")
	sessionValidity := fs.Int("s", int(cfg.SessionValidityDuration.Seconds()), "session validity (in seconds)")
	fs.BoolVar(&cfg.MockAuth, "m", cfg.MockAuth, "use the mock credential verifier")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionValidityDuration = time.Duration(*sessionValidity) * time.Second
}
