// Package google connects a user's Google account through OAuth2 and exports
// allocation breakdowns to Google Sheets.
package google

import "errors"

var (
	ErrUnauthenticated = errors.New("user is unauthenticated, authentication is required")
	ErrUnknownState    = errors.New("unknown authorization state")
)
