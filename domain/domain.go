package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog item tied to exactly one activity and one
// category, referenced by name
type Product struct {
	Name     string
	Activity string
	Category string
}

// Rating represents a single user's review of a product
type Rating struct {
	ID        uuid.UUID
	Product   string
	User      string
	Stars     int
	Comment   string
	CreatedAt time.Time
}

// String renders the rating in its listing form, "<stars> : <comment>"
func (r Rating) String() string {
	return fmt.Sprintf("%d : %s", r.Stars, r.Comment)
}

// ActivityStars pairs an activity name with the mean star value across all
// ratings of the activity's products
type ActivityStars struct {
	Activity string
	Stars    float64
}

// StarsGroup lists the product names whose mean rating equals Stars
type StarsGroup struct {
	Stars    float64
	Products []string
}
