// Package catalog implements an in-memory catalog of sporting-goods
// products: activities, categories linked to activities, products assigned
// to an activity/category pair, and user ratings, plus aggregate queries
// over them.
//
// A Catalog assumes exclusive, single-threaded access. Hosts sharing one
// instance across goroutines must serialize calls externally.
package catalog

import (
	"errors"

	"go.uber.org/zap"

	"sports-catalog/domain"
)

const (
	// MinStars and MaxStars bound the accepted star values for a rating
	MinStars = 0
	MaxStars = 5
)

var (
	// ErrValidation is wrapped by every operation that rejects its input.
	// Callers detect rejections with errors.Is.
	ErrValidation = errors.New("validation failed")
)

// Catalog owns all catalog state. The zero value is not usable; construct
// instances with New.
type Catalog struct {
	logger *zap.Logger

	activities         map[string]struct{}
	categoryActivities map[string]map[string]struct{}
	activityCategories map[string]map[string]struct{}
	products           map[string]domain.Product
	ratings            map[string][]domain.Rating
}

// New creates an empty catalog. A nil logger disables logging.
func New(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		logger:             logger,
		activities:         make(map[string]struct{}),
		categoryActivities: make(map[string]map[string]struct{}),
		activityCategories: make(map[string]map[string]struct{}),
		products:           make(map[string]domain.Product),
		ratings:            make(map[string][]domain.Rating),
	}
}
