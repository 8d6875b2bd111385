package main

import "fmt"

// RequestError represents a rejected viewer request
type RequestError struct {
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

const (
	CodeOffBoard      = "OFF_BOARD"
	CodeBadRadius     = "BAD_RADIUS"
	CodeObserverWall  = "OBSERVER_WALL"
	CodeBadPayload    = "BAD_PAYLOAD"
	CodeUnknownIntent = "UNKNOWN_INTENT"
)
