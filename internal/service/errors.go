package service

import "errors"

// Sentinel errors shared by the services. Controllers map these onto HTTP
// status codes; everything else is treated as a store failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
