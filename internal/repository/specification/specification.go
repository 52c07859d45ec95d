package specification

import "gorm.io/gorm"

// Specification is a composable query predicate. Repositories AND together
// whatever specifications a caller passes, so tenancy scoping and list
// filters share one mechanism.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
