// Package config loads runtime configuration for the recipeshare client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file named by -c / -config or RECIPESHARE_CONFIG.
//     Files ending in .yaml or .yml are YAML, anything else is JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the recipe backend
//	-i int      online status check interval (seconds)
//	-t int      request timeout (seconds)
//	-d string   sqlite database path
//	-l string   log level
//
// # File schema
//
// Durations can be strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "message_ttl": "5s",
//	  "database_path": "recipeshare.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
