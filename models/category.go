package models

// Category groups products under a unique, human-readable name.
// Products reference their category by id; the reverse relation is
// queried on demand through ProductsRepository.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (c *Category) TableName() string {
	return "categories"
}

// CategoryPatch carries the replacement values for an update.
type CategoryPatch struct {
	Name string
}

// Apply returns a copy of c with the patch applied. c is left untouched.
func (c Category) Apply(patch CategoryPatch) Category {
	c.Name = patch.Name
	return c
}
