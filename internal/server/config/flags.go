package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/electro/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN; empty keeps data in memory
//	-s string   token signing secret
//	-t int      token validity, hours
//	-l string   log level
//	-r string   comma-separated partition order for plain lookup
//	-o string   comma-separated partition order for lookup with related products
//
// Arguments are filtered through flagx.FilterArgs first so that -c/-config
// and flags of other components do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-r", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token validity duration (in hours)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	lookupOrder := fs.String("r", strings.Join(config.LookupOrder, ","), "partition order for plain lookup")
	detailOrder := fs.String("o", strings.Join(config.DetailOrder, ","), "partition order for lookup with related products")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Hour
	config.LookupOrder = splitList(*lookupOrder)
	config.DetailOrder = splitList(*detailOrder)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
