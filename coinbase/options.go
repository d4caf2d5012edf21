// Copyright (c) 2026 Coinbase Agent Authors

package coinbase

import "time"

var RestHostname = "api.coinbase.com"

type Options struct {
	// Hostname for the REST service endpoint.
	RestHostname string

	// Timeout to use for the HTTP requests.
	HttpClientTimeout time.Duration

	// RestRateLimit is the max number of REST requests issued per second.
	RestRateLimit float64

	// restScheme lets tests point the client at a plain-http test server.
	restScheme string
}

func (v *Options) setDefaults() {
	if v.RestHostname == "" {
		v.RestHostname = RestHostname
	}
	if v.restScheme == "" {
		v.restScheme = "https"
	}
	if v.HttpClientTimeout == 0 {
		v.HttpClientTimeout = 5 * time.Second
	}
	if v.RestRateLimit == 0 {
		v.RestRateLimit = 25
	}
}
