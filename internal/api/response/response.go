// Package response defines the JSON envelopes every endpoint renders.
package response

import "github.com/labstack/echo/v4"

// Response is the success envelope every endpoint renders.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// Error is the error envelope rendered by the HTTP error handler.
type Error struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// JSON renders data in the success envelope with the given status code.
func JSON(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, Response{
		StatusCode: code,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}
