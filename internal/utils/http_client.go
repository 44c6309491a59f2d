// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000", 10*time.Second)
//	resp, err := client.R().Get("/post")
type HTTPClient struct {
	*resty.Client
	jar http.CookieJar
}

// NewHTTPClient creates a resty client bound to baseURL with an in-memory
// cookie jar, so cookies set by the server are sent on later requests.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	jar, _ := cookiejar.New(nil)

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client, jar: jar}
}

// Jar returns the cookie jar shared by all requests of the client.
func (c *HTTPClient) Jar() http.CookieJar {
	return c.jar
}
