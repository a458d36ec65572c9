package config

import (
	"flag"
	"os"
	"time"

	"github.com/lecolegal/intake/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string       base URL of the auth backend
//	-t int          request timeout in seconds
//	-s string       path of the local store (":memory:" for none)
//	-d string       required email domain suffix
//	-verify string  verification link or token to apply at startup
//
// os.Args is filtered to only the flags handled here, so the -c/-config
// flags of the JSON loader pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s", "-d", "-verify"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the auth backend")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local store")
	fs.StringVar(&cfg.EmailDomain, "d", cfg.EmailDomain, "required email domain suffix")
	fs.StringVar(&cfg.VerifyLink, "verify", cfg.VerifyLink, "email verification link or token")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
