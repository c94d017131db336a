// Package preference holds key/value stores for user preferences. The
// Postgres store scopes keys to the user in the request context, the file
// store keeps them in a local JSON document for the command line client.
package preference

import "errors"

var ErrEmptyKey = errors.New("preference key must not be empty")
