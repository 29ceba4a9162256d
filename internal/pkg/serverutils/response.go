package serverutils

// Response is the uniform envelope every endpoint returns. External
// callers depend on this exact shape.
type Response[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// ErrorResponse carries an empty data object, never null.
func ErrorResponse(message string) Response[struct{}] {
	return Response[struct{}]{
		Status:  "error",
		Message: message,
		Data:    struct{}{},
	}
}
