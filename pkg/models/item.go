package models

// Item represents a filesystem entry handled by a clipboard operation.
// On the source side it is a user-provided path resolved to an absolute
// one; on the destination side it is a direct child of the staging
// directory.
type Item struct {
	// Path is the absolute path of the entry
	Path string

	// Name is the final path component, used as the destination name
	Name string

	// IsDir indicates if this is a directory
	IsDir bool

	// Size in bytes (zero for directories and unresolvable entries)
	Size int64
}

// Batch is the ordered set of items processed by one invocation of
// copy, paste, or remove. Order is insertion order from the resolver.
type Batch []Item
