package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrAPIRequest          = goerr.New("API request failed", goerr.ID("ErrAPIRequest"))
	ErrUnexpectedStatus    = goerr.New("unexpected HTTP status", goerr.ID("ErrUnexpectedStatus"))
	ErrSerializationDefect = goerr.New("run cannot be serialized by the service", goerr.ID("ErrSerializationDefect"))
	ErrMalformedResponse   = goerr.New("malformed API response", goerr.ID("ErrMalformedResponse"))
	ErrListingOrder        = goerr.New("run listing is not ordered newest-first", goerr.ID("ErrListingOrder"))
	ErrConfiguration       = goerr.New("configuration error", goerr.ID("ErrConfiguration"))
)
