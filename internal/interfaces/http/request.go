package http

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// bindJSON decodifica el body JSON en v sin exigir Content-Type.
// Un body vacío deja v en su valor cero.
func bindJSON(c *fiber.Ctx, v any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}
