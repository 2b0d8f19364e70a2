package delivery

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"inventory_app/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, domain.ErrValidation)
	}
	return id, nil
}

// formInt parses a form field as a non-negative integer.
func formInt(c *gin.Context, field string) (int, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	value, err := cast.ToIntE(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("field %q must be a non-negative integer, got %q: %w", field, raw, domain.ErrValidation)
	}
	return value, nil
}

// formImage reads the optional "image" file field. A missing field, an empty
// filename, or an empty file all count as "no upload" and return nil.
func formImage(c *gin.Context) (*domain.ImageUpload, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	if header.Filename == "" || header.Size == 0 {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("could not read uploaded image: %w", err)
	}

	return &domain.ImageUpload{Name: header.Filename, Data: data}, nil
}
