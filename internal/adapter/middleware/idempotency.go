package middleware

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
)

type cachedResponse struct {
	status int
	body   []byte
}

// Idempotency replays the cached response for a repeated Idempotency-Key.
// The cache lives in process memory, same lifetime as the account store.
func Idempotency() fiber.Handler {
	var mu sync.Mutex
	cache := make(map[string]cachedResponse)

	return func(c *fiber.Ctx) error {
		// 1. Get Key from Header
		key := c.Get("Idempotency-Key")

		// If no key, skip
		if key == "" {
			return c.Next()
		}

		// 2. Check if key exists
		mu.Lock()
		cached, hit := cache[key]
		mu.Unlock()

		if hit {
			slog.Info("Idempotency Hit! Returning cached response", "key", key)
			c.Set("X-Idempotency-Hit", "true")
			c.Set("Content-Type", "application/json")
			return c.Status(cached.status).Send(cached.body)
		}

		// 3. Run the Handler
		if err := c.Next(); err != nil {
			return err
		}

		// 4. Save the Result
		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())

		mu.Lock()
		if _, exists := cache[key]; !exists {
			cache[key] = cachedResponse{status: c.Response().StatusCode(), body: body}
		}
		mu.Unlock()

		slog.Info("Idempotency Key Saved", "key", key)
		return nil
	}
}
