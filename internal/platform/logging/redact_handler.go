package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names whose values never
// reach the log output. The HTTP middleware consults the same set when it
// dumps request headers at debug level.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// mongoCredentialsPattern matches a MongoDB connection string that embeds a
// user or password ahead of the host list. Such strings surface in driver
// errors and in config dumps.
var mongoCredentialsPattern = regexp.MustCompile(`mongodb(\+srv)?://[^\s/@]+@`)

// bearerPattern matches "Bearer <token>" values forwarded by gateways.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// newRedactAttr returns the masq ReplaceAttr function installed on every
// handler built by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+4)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(mongoCredentialsPattern),
		masq.WithRegex(bearerPattern),
	)

	return masq.New(opts...)
}
