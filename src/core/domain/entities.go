package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clan is the only entity. It is created and deleted, never updated.
type Clan struct {
	ID        uuid.UUID
	Name      string
	Region    string
	CreatedAt *time.Time
}

// SortField is a column the clan list may be ordered by.
type SortField string

const (
	SortByID        SortField = "id"
	SortByName      SortField = "name"
	SortByRegion    SortField = "region"
	SortByCreatedAt SortField = "created_at"
)

// SortFields lists every accepted SortField.
var SortFields = []SortField{SortByID, SortByName, SortByRegion, SortByCreatedAt}

// ParseSortField matches s exactly against the allowed columns.
func ParseSortField(s string) (SortField, bool) {
	for _, f := range SortFields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// SortOrder is the direction of the clan list.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortOrders lists every accepted SortOrder.
var SortOrders = []SortOrder{OrderAsc, OrderDesc}

// ParseSortOrder matches s case-insensitively against asc and desc.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(strings.ToLower(s)) {
	case OrderAsc:
		return OrderAsc, true
	case OrderDesc:
		return OrderDesc, true
	}
	return "", false
}

// ListQuery is a validated clan list request.
type ListQuery struct {
	// Region filters by exact match when non-nil.
	Region *string
	SortBy SortField
	Order  SortOrder
	Limit  int
	Offset int
}
