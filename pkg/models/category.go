package models

// Category is the read model for one collection category bucket.
type Category struct {
	ID           uint
	CollectionID uint
	Name         string
}
