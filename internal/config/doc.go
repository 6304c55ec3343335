// Package config loads and validates application configuration from
// environment variables and an optional config file. Environment
// variables take precedence and use the QUILLFEED_ prefix.
package config
