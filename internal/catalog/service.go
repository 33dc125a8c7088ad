package catalog

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
)

// Service exposes product list maintenance.
type Service interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
}

type service struct {
	repo *Repository
}

// NewService wires a catalog service with the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

func (s *service) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	return s.repo.Add(ctx, name)
}

func (s *service) Remove(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	return s.repo.Remove(ctx, name)
}
