package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sports-catalog/domain"
)

// AddRating appends a rating for the named product. Stars must lie in
// [MinStars, MaxStars]. The product is not required to exist: rating an
// unknown name creates its rating bucket, so ratings may reference a product
// never registered via AddProduct. A user may rate the same product any
// number of times.
func (c *Catalog) AddRating(product, user string, stars int, comment string) error {
	if stars < MinStars || stars > MaxStars {
		c.logger.Warn("rating rejected",
			zap.String("product", product),
			zap.String("user", user),
			zap.Int("stars", stars),
		)
		return fmt.Errorf("%w: star rating must be between %d and %d", ErrValidation, MinStars, MaxStars)
	}

	rating := domain.Rating{
		ID:        uuid.New(),
		Product:   product,
		User:      user,
		Stars:     stars,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	c.ratings[product] = append(c.ratings[product], rating)

	c.logger.Debug("rating added",
		zap.String("product", product),
		zap.String("user", user),
		zap.Int("stars", stars),
	)
	return nil
}

// GetRatingsForProduct returns the product's ratings as "<stars> : <comment>"
// strings, ordered by star value descending. Ratings with equal stars keep
// their insertion order. Unknown or unrated products yield an empty slice.
func (c *Catalog) GetRatingsForProduct(product string) []string {
	ratings := c.ratings[product]

	ordered := make([]domain.Rating, len(ratings))
	copy(ordered, ratings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Stars > ordered[j].Stars
	})

	out := make([]string, 0, len(ordered))
	for _, r := range ordered {
		out = append(out, r.String())
	}
	return out
}

// GetStarsOfProduct returns the arithmetic mean of the product's star
// values, or 0 for an unknown or unrated product.
func (c *Catalog) GetStarsOfProduct(product string) float64 {
	return meanStars(c.ratings[product])
}

// AverageStars returns the arithmetic mean of star values across all ratings
// of all products, or 0 when no ratings exist anywhere.
func (c *Catalog) AverageStars() float64 {
	sum, count := 0, 0
	for _, ratings := range c.ratings {
		for _, r := range ratings {
			sum += r.Stars
		}
		count += len(ratings)
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// StarsPerActivity returns, in ascending activity-name order, the mean star
// value across all ratings of each activity's products. Activities whose
// products collectively have no ratings are omitted. Only products
// registered via AddProduct count; rating buckets created implicitly by
// AddRating belong to no activity.
func (c *Catalog) StarsPerActivity() []domain.ActivityStars {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, p := range c.products {
		for _, r := range c.ratings[p.Name] {
			sums[p.Activity] += r.Stars
		}
		counts[p.Activity] += len(c.ratings[p.Name])
	}

	out := make([]domain.ActivityStars, 0, len(counts))
	for activity, count := range counts {
		if count == 0 {
			continue
		}
		out = append(out, domain.ActivityStars{
			Activity: activity,
			Stars:    float64(sums[activity]) / float64(count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Activity < out[j].Activity
	})
	return out
}

// GetProductsPerStars groups registered product names by their exact mean
// star value. Names are sorted ascending within each group and groups are
// ordered by star value descending. Products with a zero mean are excluded.
func (c *Catalog) GetProductsPerStars() []domain.StarsGroup {
	groups := make(map[float64][]string)
	for name := range c.products {
		stars := meanStars(c.ratings[name])
		if stars > 0 {
			groups[stars] = append(groups[stars], name)
		}
	}

	out := make([]domain.StarsGroup, 0, len(groups))
	for stars, names := range groups {
		sort.Strings(names)
		out = append(out, domain.StarsGroup{Stars: stars, Products: names})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Stars > out[j].Stars
	})
	return out
}

func meanStars(ratings []domain.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Stars
	}
	return float64(sum) / float64(len(ratings))
}
