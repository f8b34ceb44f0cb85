// Package transport provides the default net/http implementation of the
// restree.RequestFunc collaborator.
//
// It JSON-encodes request properties, applies query parameters and merged
// headers, decodes JSON responses into Result.Model, and classifies non-2xx
// responses into structured errors. Each request carries an X-Request-Id
// header; tracing spans can be enabled via Config.EnableTracing.
//
//	api, err := restree.New(restree.Config{
//	    Root:      "https://api.example.com",
//	    Endpoints: endpoints,
//	    Request:   transport.New(transport.Config{Timeout: 10 * time.Second}),
//	})
//
// Transport-level concerns beyond this (TLS material, retries, connection
// pooling) belong to the *http.Client supplied via Config.HTTPClient.
package transport
