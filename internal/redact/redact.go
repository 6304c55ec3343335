// Package redact removes credentials from strings before they reach
// the logs. Connection URLs carry passwords, so anything derived from
// configuration passes through here before being logged.
package redact

import (
	"net/url"
	"regexp"
)

// Placeholder replaces redacted values.
const Placeholder = "xxxxx"

// Fallback for DSNs that do not parse as URLs, e.g. key=value pg
// connection strings.
var passwordKVRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)(=)[^\s]+`)

// ConnectionString returns the connection string with any password
// replaced by a placeholder. The host, database name, and username
// survive so log lines stay useful for diagnostics.
func ConnectionString(dsn string) string {
	u, err := url.Parse(dsn)
	if err == nil && u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), Placeholder)
			// url.UserPassword escapes the placeholder, which is plain
			// ASCII, so String round-trips cleanly.
			return u.String()
		}
	}

	return passwordKVRegex.ReplaceAllString(dsn, "${1}${2}"+Placeholder)
}
