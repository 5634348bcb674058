package service

import "errors"

// Common service errors
var (
	ErrNoSearchResults = errors.New("no questions match the search term")
)
