package models

import (
	"time"
)

// Response is the envelope every endpoint returns: status code, message,
// timestamp and a nullable payload. Failures never carry internals.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Timestamp  string      `json:"timestamp"`
	Data       interface{} `json:"data"`
}

func SuccessResponse(data interface{}, message string) Response {
	return Response{
		StatusCode: 200,
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Data:       data,
	}
}

func CreatedResponse(data interface{}, message string) Response {
	return Response{
		StatusCode: 201,
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Data:       data,
	}
}

func ErrorResponse(statusCode int, message string) Response {
	return Response{
		StatusCode: statusCode,
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}
