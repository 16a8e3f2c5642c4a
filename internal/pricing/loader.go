package pricing

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/EhtashamulIslam/FitnessZone/internal/models"

	"go.uber.org/zap"
)

// Loader fetches and decodes the pricing document. Every call reads the source again;
// nothing is cached between views.
type Loader struct {
	src Source
	log *zap.Logger
}

func NewLoader(src Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{src: src, log: log}
}

type loadResult struct {
	doc *models.PricingDocument
	err error
}

// Load returns the parsed document. If ctx ends before the read completes, Load returns
// ctx.Err() right away and the late result is dropped.
func (l *Loader) Load(ctx context.Context) (*models.PricingDocument, error) {
	done := make(chan loadResult, 1)
	go func() {
		doc, err := l.load(ctx)
		done <- loadResult{doc: doc, err: err}
	}()

	select {
	case <-ctx.Done():
		l.log.Debug("pricing load abandoned", zap.Error(ctx.Err()))
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			l.log.Debug("pricing load failed", zap.Error(r.err))
		}
		return r.doc, r.err
	}
}

func (l *Loader) load(ctx context.Context) (*models.PricingDocument, error) {
	status, body, err := l.src.Fetch(ctx)
	if err != nil {
		return nil, &FetchError{Status: status, Err: err}
	}
	if status < 200 || status > 299 {
		return nil, &FetchError{Status: status}
	}
	return Decode(body)
}

// Decode parses a raw pricing document body.
func Decode(body []byte) (*models.PricingDocument, error) {
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("<")) {
		return nil, &WrongContentError{}
	}
	var doc models.PricingDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &doc, nil
}

// FindPlan looks a plan up by id, comparing ids as strings.
func FindPlan(doc *models.PricingDocument, id string) (*models.Plan, error) {
	if doc != nil {
		for i := range doc.PricingOptions {
			if doc.PricingOptions[i].ID.String() == id {
				return &doc.PricingOptions[i], nil
			}
		}
	}
	return nil, &NotFoundError{ID: id}
}
