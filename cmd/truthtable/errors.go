package main

import "errors"

// Sentinel errors for command operations
var (
	ErrNoExpressions = errors.New("no expressions given")
)
