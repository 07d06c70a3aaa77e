package service

import (
	"context"
	"errors"

	"admin-dashboard-service/internal/model"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
}

// ErrInvalidInput separa "pedido mal armado" de "el almacén falló";
// el controller responde distinto según cuál sea.
var ErrInvalidInput = errors.New("datos de producto inválidos")

// ProductService es un passthrough con validación mínima hacia el CRUD
// de productos del almacén.
type ProductService struct {
	repo ProductRepository
}

func NewProductService(r ProductRepository) *ProductService {
	return &ProductService{repo: r}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	if p.Name == "" || p.Price < 0 || p.Quantity < 0 || p.CategoryID == "" {
		return nil, ErrInvalidInput
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductService) Update(ctx context.Context, p model.Product) (*model.Product, error) {
	if p.ID == "" || p.Name == "" || p.Price < 0 || p.Quantity < 0 || p.CategoryID == "" {
		return nil, ErrInvalidInput
	}
	if err := s.repo.Update(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
