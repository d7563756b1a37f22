package usecase

import (
	"context"

	"barista/internal/domain"
	"barista/internal/dto"
)

type Service interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id uint) (*domain.MenuItem, error)
	CreateItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, id uint, apply func(*domain.MenuItem)) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id uint) error
}

type MenuUseCase struct {
	service Service
}

func NewMenuUseCase(service Service) *MenuUseCase {
	return &MenuUseCase{service: service}
}

func (uc *MenuUseCase) GetMenu(ctx context.Context) ([]dto.MenuItemDTO, error) {
	items, err := uc.service.GetMenu(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MenuItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mapMenuItem(item))
	}

	return out, nil
}

func (uc *MenuUseCase) GetItem(ctx context.Context, id uint) (*dto.MenuItemDTO, error) {
	item, err := uc.service.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	mapped := mapMenuItem(*item)
	return &mapped, nil
}

func (uc *MenuUseCase) CreateItem(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.MenuItemDTO, error) {
	item, err := uc.service.CreateItem(ctx, domain.MenuItem{
		Name:        req.Name,
		Category:    domain.DrinkCategory(req.Category),
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	mapped := mapMenuItem(*item)
	return &mapped, nil
}

func (uc *MenuUseCase) UpdateItem(ctx context.Context, id uint, req dto.UpdateMenuItemRequest) (*dto.MenuItemDTO, error) {
	item, err := uc.service.UpdateItem(ctx, id, func(item *domain.MenuItem) {
		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Category != nil {
			item.Category = domain.DrinkCategory(*req.Category)
		}
		if req.Price != nil {
			item.Price = *req.Price
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.ImageURL != nil {
			item.ImageURL = *req.ImageURL
		}
		if req.IsActive != nil {
			item.IsActive = *req.IsActive
		}
	})
	if err != nil {
		return nil, err
	}

	mapped := mapMenuItem(*item)
	return &mapped, nil
}

func (uc *MenuUseCase) DeleteItem(ctx context.Context, id uint) error {
	return uc.service.DeleteItem(ctx, id)
}

func mapMenuItem(item domain.MenuItem) dto.MenuItemDTO {
	return dto.MenuItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Category:    string(item.Category),
		Price:       item.Price,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
