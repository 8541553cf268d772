package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks bad or missing caller input. Request-fatal.
	ErrInvalidRequest = errors.New("invalid request")

	ErrMissingAPIKey  = fmt.Errorf("%w: no YouTube API key configured", ErrInvalidRequest)
	ErrInvalidKeyword = fmt.Errorf("%w: keyword must not be empty", ErrInvalidRequest)

	// ErrChannelNotFound and ErrUpstream are contained per channel.
	ErrChannelNotFound = errors.New("channel not found")
	ErrUpstream        = errors.New("upstream error")
)
