package pricing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DocumentPath is the fixed location of the pricing document.
const DocumentPath = "/PricingData.json"

// Source performs the raw read of the pricing document.
// status follows HTTP semantics for every implementation.
type Source interface {
	Fetch(ctx context.Context) (status int, body []byte, err error)
}

// FileSource reads the document from the static directory the server also publishes.
type FileSource struct {
	Dir string
}

func (s FileSource) Fetch(ctx context.Context) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	body, err := os.ReadFile(filepath.Join(s.Dir, strings.TrimPrefix(DocumentPath, "/")))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fiber.StatusNotFound, nil, nil
	case err != nil:
		return 0, nil, err
	}
	return fiber.StatusOK, body, nil
}

// HTTPSource issues a plain GET of BaseURL + DocumentPath. Timeout 0 means no timeout.
type HTTPSource struct {
	BaseURL string
	Timeout time.Duration
}

func (s HTTPSource) Fetch(ctx context.Context) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	a := fiber.Get(strings.TrimRight(s.BaseURL, "/") + DocumentPath)
	if s.Timeout > 0 {
		a.Timeout(s.Timeout)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return 0, nil, errors.Join(errs...)
	}
	return code, body, nil
}

// DBSource reads the raw document text from the pricing_documents table.
type DBSource struct {
	DB   *sql.DB
	Name string
}

func (s DBSource) Fetch(ctx context.Context) (int, []byte, error) {
	var doc string
	err := s.DB.QueryRowContext(ctx, `
        SELECT document
        FROM pricing_documents
        WHERE name = $1
    `, s.Name).Scan(&doc)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fiber.StatusNotFound, nil, nil
	case err != nil:
		return 0, nil, fmt.Errorf("db: read pricing document %q: %w", s.Name, err)
	}
	return fiber.StatusOK, []byte(doc), nil
}
