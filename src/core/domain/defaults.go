package domain

// Clan field limits, counted in characters.
const (
	MaxNameLength   = 255
	MaxRegionLength = 16
)

// List pagination bounds.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// DefaultSortField and DefaultSortOrder apply when the list request omits them.
const (
	DefaultSortField = SortByCreatedAt
	DefaultSortOrder = OrderDesc
)
