package catalog

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// DefineActivities registers one or more activity names. Registering a name
// again is a no-op. An empty call is rejected.
func (c *Catalog) DefineActivities(names ...string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: no activities provided", ErrValidation)
	}

	for _, name := range names {
		c.activities[name] = struct{}{}
		if _, ok := c.activityCategories[name]; !ok {
			c.activityCategories[name] = make(map[string]struct{})
		}
	}

	c.logger.Debug("activities defined", zap.Strings("names", names))
	return nil
}

// GetActivities returns all registered activity names in sorted order.
func (c *Catalog) GetActivities() []string {
	out := make([]string, 0, len(c.activities))
	for name := range c.activities {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// AddCategory registers a category linked to the given activities, replacing
// the link set of any earlier registration under the same name. Every listed
// activity must already be defined; a category may be registered with no
// activities at all.
//
// Reverse links left behind by an earlier registration are not removed: an
// activity dropped from the link set keeps listing the category.
func (c *Catalog) AddCategory(name string, activities ...string) error {
	for _, activity := range activities {
		if _, ok := c.activities[activity]; !ok {
			return fmt.Errorf("%w: activity %q does not exist", ErrValidation, activity)
		}
	}

	linked := make(map[string]struct{}, len(activities))
	for _, activity := range activities {
		linked[activity] = struct{}{}
		c.activityCategories[activity][name] = struct{}{}
	}
	c.categoryActivities[name] = linked

	c.logger.Debug("category added",
		zap.String("name", name),
		zap.Strings("activities", activities),
	)
	return nil
}

// CountCategories returns the number of distinct registered category names.
func (c *Catalog) CountCategories() int {
	return len(c.categoryActivities)
}

// GetCategoriesForActivity returns the category names linked to the activity
// in sorted order. Unknown activities yield an empty slice, not an error.
func (c *Catalog) GetCategoriesForActivity(activity string) []string {
	linked, ok := c.activityCategories[activity]
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(linked))
	for name := range linked {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
