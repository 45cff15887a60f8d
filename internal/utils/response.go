package utils

// Result is the envelope every prompt operation answers with. Data is set
// only on success and Error only on failure.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok wraps data in a successful Result.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data}
}

// Done is a successful Result with no payload.
func Done() Result[struct{}] {
	return Result[struct{}]{Success: true}
}

// Fail creates a failed Result carrying a user-facing message.
func Fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Error: message}
}
