package service

import (
	"context"

	"barista/internal/domain"
)

type Repository interface {
	FindByID(ctx context.Context, id uint) (*domain.MenuItem, error)
	ListAll(ctx context.Context) ([]domain.MenuItem, error)
	Insert(ctx context.Context, item domain.MenuItem) (uint, error)
	Update(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id uint) error
}

type MenuService struct {
	repo Repository
}

func NewService(repo Repository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListAll(ctx)
}

func (s *MenuService) GetItem(ctx context.Context, id uint) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MenuService) CreateItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	item.IsActive = true

	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// UpdateItem applies only the fields the caller supplied; nil means
// keep the stored value.
func (s *MenuService) UpdateItem(ctx context.Context, id uint, apply func(*domain.MenuItem)) (*domain.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(item)

	if err := s.repo.Update(ctx, *item); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *MenuService) DeleteItem(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
