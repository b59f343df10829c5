package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"clans/src/core/domain"
	"clans/src/core/ports"
)

// ClanService validates clan requests and hands them to the repository.
// Nothing reaches the repository until validation has passed.
type ClanService struct {
	repo ports.ClanRepository
	log  *slog.Logger
}

// NewClanService creates a new ClanService.
func NewClanService(repo ports.ClanRepository, log *slog.Logger) *ClanService {
	return &ClanService{repo: repo, log: log}
}

// CreateClanInput is the payload for Create.
type CreateClanInput struct {
	Name   string
	Region string
}

// ListClansInput carries raw list parameters. Nil pointers select the
// defaults; a sort_by or order that is present but empty is rejected. An
// empty region means no filter.
type ListClansInput struct {
	Region string
	SortBy *string
	Order  *string
	Limit  *int
	Offset *int
}

// Create inserts a new clan and returns it with its generated id.
func (s *ClanService) Create(ctx context.Context, in CreateClanInput) (*domain.Clan, error) {
	if err := validateLength("name", in.Name, domain.MaxNameLength); err != nil {
		return nil, err
	}
	if err := validateLength("region", in.Region, domain.MaxRegionLength); err != nil {
		return nil, err
	}

	clan, err := s.repo.Create(ctx, in.Name, in.Region)
	if err != nil {
		return nil, err
	}
	s.log.Info("clan created", "clan_id", clan.ID, "region", clan.Region)
	return clan, nil
}

// List returns a page of clans. Rows sharing a sort key come back ordered by id.
func (s *ClanService) List(ctx context.Context, in ListClansInput) ([]domain.Clan, error) {
	q, err := ParseListQuery(in)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, q)
}

// Get returns the clan identified by rawID.
func (s *ClanService) Get(ctx context.Context, rawID string) (*domain.Clan, error) {
	id, err := ParseClanID(rawID)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the clan identified by rawID and returns its id.
func (s *ClanService) Delete(ctx context.Context, rawID string) (uuid.UUID, error) {
	id, err := ParseClanID(rawID)
	if err != nil {
		return uuid.Nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	s.log.Info("clan deleted", "clan_id", deleted)
	return deleted, nil
}

// ParseClanID parses a path identifier as a UUID.
func ParseClanID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("clan_id", "value is not a valid uuid")
	}
	return id, nil
}

// ParseListQuery applies defaults and bounds to raw list parameters.
func ParseListQuery(in ListClansInput) (domain.ListQuery, error) {
	q := domain.ListQuery{
		SortBy: domain.DefaultSortField,
		Order:  domain.DefaultSortOrder,
		Limit:  domain.DefaultListLimit,
	}

	if in.Limit != nil {
		if *in.Limit < 1 || *in.Limit > domain.MaxListLimit {
			return q, domain.NewValidationError("limit",
				fmt.Sprintf("must be between 1 and %d", domain.MaxListLimit))
		}
		q.Limit = *in.Limit
	}
	if in.Offset != nil {
		if *in.Offset < 0 {
			return q, domain.NewValidationError("offset", "must be greater than or equal to 0")
		}
		q.Offset = *in.Offset
	}

	if in.SortBy != nil {
		f, ok := domain.ParseSortField(*in.SortBy)
		if !ok {
			return q, domain.NewParameterError("sort_by", "Invalid sort_by: "+*in.SortBy)
		}
		q.SortBy = f
	}
	if in.Order != nil {
		o, ok := domain.ParseSortOrder(*in.Order)
		if !ok {
			return q, domain.NewParameterError("order", "Invalid order: "+*in.Order)
		}
		q.Order = o
	}

	if in.Region != "" {
		region := in.Region
		q.Region = &region
	}

	return q, nil
}

func validateLength(field, value string, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n < 1 || n > maxLen {
		return domain.NewValidationError(field,
			fmt.Sprintf("must be between 1 and %d characters", maxLen))
	}
	return nil
}
