package ratelimit

import "strings"

// MatchEndpoint resolves the endpoint configuration for a path and method.
// Exact path matches win over prefix matches; prefix entries must end in
// "/". The health check is always unlimited. Returns nil when only the
// global default applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
