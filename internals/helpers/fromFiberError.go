package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError: *fiber.Error (mis. dari service/transaction) jadi JSON dengan code-nya,
// selain itu diteruskan ke pemetaan error DB.
func FromFiberError(c *fiber.Ctx, err error, context string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonDBError(c, err, context)
}
