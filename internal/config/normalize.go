package config

import "strings"

// normalizeConfig normalizes configuration values.
func normalizeConfig(c *Config) {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	c.Server.Host = strings.TrimSpace(c.Server.Host)

	// Stray whitespace in keys copied from a dashboard breaks the hash silently
	c.Catalog.PublicKey = strings.TrimSpace(c.Catalog.PublicKey)
	c.Catalog.PrivateKey = strings.TrimSpace(c.Catalog.PrivateKey)
	c.Catalog.Timestamp = strings.TrimSpace(c.Catalog.Timestamp)
	c.Catalog.BaseURL = strings.TrimRight(strings.TrimSpace(c.Catalog.BaseURL), "/")
	c.Catalog.ResourcePath = strings.TrimSpace(c.Catalog.ResourcePath)
}
