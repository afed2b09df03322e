package main

import "net/url"

// redactSource hides credentials in URL-shaped dataset sources before logging.
func redactSource(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.User == nil {
		return s
	}
	return u.Redacted()
}
