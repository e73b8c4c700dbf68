package catalog

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"sports-catalog/domain"
)

// AddProduct registers a product under a globally unique name. The activity
// and category are recorded as given; neither is checked for registration or
// for being linked to the other. A rating bucket already created for the name
// by AddRating is kept.
func (c *Catalog) AddProduct(name, activity, category string) error {
	if _, ok := c.products[name]; ok {
		return fmt.Errorf("%w: product %q already exists", ErrValidation, name)
	}

	c.products[name] = domain.Product{
		Name:     name,
		Activity: activity,
		Category: category,
	}
	if _, ok := c.ratings[name]; !ok {
		c.ratings[name] = []domain.Rating{}
	}

	c.logger.Debug("product added",
		zap.String("name", name),
		zap.String("activity", activity),
		zap.String("category", category),
	)
	return nil
}

// GetProductsForCategory returns the names of products assigned to the
// category, sorted lexicographically.
func (c *Catalog) GetProductsForCategory(category string) []string {
	out := []string{}
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p.Name)
		}
	}
	sort.Strings(out)
	return out
}

// GetProductsForActivity returns the names of products assigned to the
// activity, sorted lexicographically.
func (c *Catalog) GetProductsForActivity(activity string) []string {
	out := []string{}
	for _, p := range c.products {
		if p.Activity == activity {
			out = append(out, p.Name)
		}
	}
	sort.Strings(out)
	return out
}

// GetProducts returns the names of products assigned to the activity and to
// one of the given categories, sorted lexicographically.
func (c *Catalog) GetProducts(activity string, categories ...string) []string {
	allowed := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		allowed[category] = struct{}{}
	}

	out := []string{}
	for _, p := range c.products {
		if p.Activity != activity {
			continue
		}
		if _, ok := allowed[p.Category]; !ok {
			continue
		}
		out = append(out, p.Name)
	}
	sort.Strings(out)
	return out
}
