package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v5"
)

// APIError is the JSON error body returned on failed requests.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

var errImageTooLarge = errors.New("image exceeds size limit")

// readImage reads the request body up to the size limit. An empty body is an
// error: every endpoint needs an image to work on.
func readImage(c *echo.Context, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, errImageTooLarge
	}
	if len(body) == 0 {
		return nil, errors.New("empty request body")
	}
	return body, nil
}

func boolParam(c *echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && v
}

func writeReadError(c *echo.Context, err error) error {
	if errors.Is(err, errImageTooLarge) {
		return writeError(c, http.StatusRequestEntityTooLarge, "invalid_request_error", err.Error())
	}
	return writeError(c, http.StatusBadRequest, "invalid_request_error", err.Error())
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": APIError{
			Message: msg,
			Type:    errType,
		},
	})
}
