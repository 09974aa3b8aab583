package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every request made by the client
const DefaultTimeout = 30 * time.Second

// Option to configure the API client
type Option func(*httpClient)

// Host sets the base URL of the API
func Host(host string) Option {
	return func(c *httpClient) {
		c.host = host
	}
}

// SessionToken sets the token identifying the session
func SessionToken(token string) Option {
	return func(c *httpClient) {
		c.token = token
	}
}

// HTTPClient sets the http client used to reach the API
func HTTPClient(client *http.Client) Option {
	return func(c *httpClient) {
		if client != nil {
			c.http = client
		}
	}
}

// Logger sets a logger for this client
func Logger(l *zap.Logger) Option {
	return func(c *httpClient) {
		if l != nil {
			c.l = l
		}
	}
}
