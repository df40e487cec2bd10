// Package config handles configuration for the server, layering defaults,
// an optional JSON file, environment variables and command-line flags.
package config

import "time"

// Config holds runtime settings for the electro server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidityDuration: lifetime of issued session tokens.
//   - LogLevel: debug, info, warn or error.
//   - LookupOrder: partition priority for plain product lookup.
//   - DetailOrder: partition priority for product lookup with related products.
//   - CanonicalPartition: the "all products" partition used for filtering
//     and related-product queries.
//   - RecentlyAddedPartition: partition served by the single-partition lookup.
//   - CartCollection / UsersCollection: collections for cart items and accounts.
//   - ListRoutes: route name under /api → partition served by it in full.
type Config struct {
	EndpointAddrHTTP       string
	DatabaseDSN            string
	SecretKey              string
	TokenValidityDuration  time.Duration
	LogLevel               string
	LookupOrder            []string
	DetailOrder            []string
	CanonicalPartition     string
	RecentlyAddedPartition string
	CartCollection         string
	UsersCollection        string
	ListRoutes             map[string]string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 7 * 24 * time.Hour
	c.LogLevel = "info"
	c.LookupOrder = []string{
		"AllProducts", "shuffle", "topRatings", "featured",
		"onSell", "bestSells", "bestDeals", "recentlyAdded",
	}
	c.DetailOrder = []string{
		"featured", "onSell", "topRatings", "bestSells", "bestDeals",
		"recentlyAdded", "AllProducts", "shuffle", "addToCart",
	}
	c.CanonicalPartition = "AllProducts"
	c.RecentlyAddedPartition = "recentlyAdded"
	c.CartCollection = "addToCart"
	c.UsersCollection = "users"
	c.ListRoutes = map[string]string{
		"allProducts":      "AllProducts",
		"recently":         "recentlyAdded",
		"shuffleProducts":  "shuffle",
		"featuredProducts": "featured",
		"onSaleProducts":   "onSell",
		"topRatedProducts": "topRatings",
		"bestDeals":        "bestDeals",
		"bestSells":        "bestSells",
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
