package restree

import (
	"fmt"
	"strings"

	"github.com/kbukum/restree/endpoint"
)

// Config configures a Client.
type Config struct {
	// Root is the base URL every route is anchored at. Required; trailing
	// slashes are stripped once at construction.
	Root string

	// Endpoints declares the resource hierarchy. Required, non-empty.
	Endpoints []endpoint.Declaration

	// Versions are global version prefixes. Every simple endpoint is also
	// exposed under each prefix, e.g. "users" and "v2/users".
	Versions []string

	// Headers are default headers merged over the built-in
	// Content-Type/Accept application/json pair.
	Headers map[string]string

	// AltMethodNames renames verb operations for Invoke dispatch, e.g.
	// {VerbGet: "fetch"}. Typed methods keep their canonical behavior.
	AltMethodNames map[Verb]string

	// BeforeEach, when set, runs before every transport call.
	BeforeEach Hook

	// Request is the transport collaborator. Required; no default
	// transport is assumed (package transport provides one).
	Request RequestFunc
}

// Validate checks that the configuration is usable. New calls this; it is
// exported so callers assembling configs from other sources can fail fast.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("restree: root is required")
	}
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("restree: at least one endpoint is required")
	}
	if c.Request == nil {
		return fmt.Errorf("restree: request function is required")
	}
	return nil
}
