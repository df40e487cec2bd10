package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/electro/internal/flagx"
	"github.com/dmitrijs2005/electro/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept "168h" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP       string            `json:"endpoint_addr_http"`
	DatabaseDSN            string            `json:"database_dsn"`
	SecretKey              string            `json:"secret_key"`
	TokenValidityDuration  timex.Duration    `json:"token_validity_duration"`
	LogLevel               string            `json:"log_level"`
	LookupOrder            []string          `json:"lookup_order"`
	DetailOrder            []string          `json:"detail_order"`
	CanonicalPartition     string            `json:"canonical_partition"`
	RecentlyAddedPartition string            `json:"recently_added_partition"`
	CartCollection         string            `json:"cart_collection"`
	UsersCollection        string            `json:"users_collection"`
	ListRoutes             map[string]string `json:"list_routes"`
}

// parseJson overlays values from the file named by -c/-config (or
// ELECTRO_CONFIG) onto config. Keys absent from the file keep their current
// value. An unreadable or malformed file panics.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
	if len(c.LookupOrder) > 0 {
		config.LookupOrder = c.LookupOrder
	}
	if len(c.DetailOrder) > 0 {
		config.DetailOrder = c.DetailOrder
	}
	setString(&config.CanonicalPartition, c.CanonicalPartition)
	setString(&config.RecentlyAddedPartition, c.RecentlyAddedPartition)
	setString(&config.CartCollection, c.CartCollection)
	setString(&config.UsersCollection, c.UsersCollection)
	if len(c.ListRoutes) > 0 {
		config.ListRoutes = c.ListRoutes
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
