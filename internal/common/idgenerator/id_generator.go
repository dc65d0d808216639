// Package idgenerator generates record identifiers composed of a prefix,
// a millisecond timestamp and a base64-encoded UUID. IDs generated later sort
// after IDs generated earlier when compared as strings of equal prefix.
package idgenerator

//go:generate mockgen -source=id_generator.go -destination=mock/id_generator.go -package=mock

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixTransaction = "TX"
	PrefixRequest     = "REQ"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct {
	now func() time.Time
}

type Option func(*IDGenerator)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *IDGenerator) {
		g.now = now
	}
}

func New(opts ...Option) Generator {
	g := &IDGenerator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate joins prefixes with "-" and appends the timestamp and encoded UUID.
// Without a prefix only the timestamp and encoded UUID are returned.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	encodedUUID := rawURLEncodedUUID(uuid.New())
	epocTime := g.now().UnixMilli()

	if prefix == "" {
		return fmt.Sprintf("%d%s", epocTime, encodedUUID)
	}

	return fmt.Sprintf("%s-%d%s", prefix, epocTime, encodedUUID)
}

func rawURLEncodedUUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}
