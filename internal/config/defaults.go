package config

import "github.com/spf13/viper"

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.enable_cors", false)
	v.SetDefault("server.cors_origins", []string{})

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://gateway.marvel.com:443")
	v.SetDefault("catalog.resource_path", "/v1/public/characters")
	v.SetDefault("catalog.public_key", "")
	v.SetDefault("catalog.private_key", "")
	v.SetDefault("catalog.timestamp", "1")
	v.SetDefault("catalog.page_size", 20)
	v.SetDefault("catalog.timeout", "30s")
	v.SetDefault("catalog.user_agent", "Herodex/1.0")
	v.SetDefault("catalog.max_body_bytes", 4<<20)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}
