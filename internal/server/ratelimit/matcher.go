package ratelimit

import "strings"

// unthrottled marks an endpoint that bypasses the limiter entirely.
var unthrottled = EndpointConfig{}

// MatchEndpoint resolves the rate limit rule for a request. Exact
// path+method matches win; rules whose path ends in "/" act as prefixes
// so "/diagnostics/" covers "/diagnostics/{id}". GET /health is always
// unthrottled because load balancer checks hit it constantly.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &unthrottled
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		ec := &configs[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}

	return nil
}
