package services

import "net/http"

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func errProductNotFound() *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: "The product does not exist."}
}

func errDecreaseWithoutCart() *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Cannot decrease quantity for a non-existing cart."}
}

func errDecreaseWithoutItem() *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Cannot decrease quantity for a non-existing product in the cart."}
}

func errInternal(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: message}
}
