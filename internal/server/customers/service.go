package customers

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const defaultPageSize = 10

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListPage fetches one page of customers. Page and page size are normalized
// to minimums of 1 (size falls back to the default when unset); total_pages
// is ceil(count/size) with a floor of 1 so an empty table still has page 1.
func (s *Service) ListPage(ctx context.Context, page, pageSize int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	records, total, err := s.repo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return &Page{
		Customers:   records,
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalCount:  total,
	}, nil
}

// Create stores a new customer under a server-assigned id.
func (s *Service) Create(ctx context.Context, customer Customer) (*Customer, error) {
	customer.ID = uuid.NewString()

	created, err := s.repo.Create(ctx, &customer)
	if err != nil {
		return nil, fmt.Errorf("error creating customer: %w", err)
	}

	return created, nil
}

// Update replaces the editable fields of an existing customer.
func (s *Service) Update(ctx context.Context, customer Customer) (*Customer, error) {
	updated, err := s.repo.Update(ctx, &customer)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a customer by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
