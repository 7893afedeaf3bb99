package http

import (
	"errors"
	"fmt"
	"io"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// readFormFile returns the uploaded bytes of field, or nil when the request
// carries no such file. A present but empty upload yields a non-nil empty slice.
func readFormFile(c *fiber.Ctx, field string) ([]byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, domain.NewMalformedInputError("invalid multipart form: %v", err)
	}
	if header == nil {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}
