package utils

import "github.com/gofiber/fiber/v3"

// SetLocal stores a typed request-scoped value.
func SetLocal[T any](c fiber.Ctx, name string, value T) {
	c.Locals(name, value)
}

// GetLocal returns the value stored under name, if it has type T.
func GetLocal[T any](c fiber.Ctx, name string) (T, bool) {
	v, ok := c.Locals(name).(T)
	return v, ok
}
