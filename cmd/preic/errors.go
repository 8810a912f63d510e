package main

import "errors"

// ErrCheckFailed is returned when at least one checked file has errors
var ErrCheckFailed = errors.New("check failed")
