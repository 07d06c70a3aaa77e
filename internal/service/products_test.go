package service

import (
	"context"
	"errors"
	"testing"

	"admin-dashboard-service/internal/model"
	"admin-dashboard-service/internal/repository"
)

type fakeProductRepo struct {
	products  []model.Product
	failWrite bool
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p *model.Product) error {
	if f.failWrite {
		return repository.ErrWriteFailed
	}
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *model.Product) error {
	if f.failWrite {
		return repository.ErrWriteFailed
	}
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if f.failWrite {
		return repository.ErrWriteFailed
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	created, err := svc.Create(ctx, model.Product{ID: "p1", Name: "Mug", Price: 9.5, Quantity: 3, CategoryID: "c1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "p1" {
		t.Fatalf("unexpected id %q", created.ID)
	}

	updated, err := svc.Update(ctx, model.Product{ID: "p1", Name: "Big Mug", Price: 12, Quantity: 2, CategoryID: "c1"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Big Mug" {
		t.Fatalf("update not applied: %+v", updated)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Big Mug" {
		t.Fatalf("list wrong: %+v", list)
	}

	if err := svc.Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "p1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("deleting twice should fail with not found, got %v", err)
	}
}

func TestProductValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(&fakeProductRepo{})

	cases := []model.Product{
		{ID: "p1", Name: "", Price: 1, CategoryID: "c1"},
		{ID: "p1", Name: "A", Price: -1, CategoryID: "c1"},
		{ID: "p1", Name: "A", Price: 1, Quantity: -1, CategoryID: "c1"},
		{ID: "p1", Name: "A", Price: 1, CategoryID: ""},
	}
	for _, p := range cases {
		if _, err := svc.Create(ctx, p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", p, err)
		}
	}

	if _, err := svc.Update(ctx, model.Product{ID: "", Name: "A", Price: 1, CategoryID: "c1"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty id, got %v", err)
	}
	if err := svc.Delete(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty id, got %v", err)
	}
}

func TestProductCreate_StoreFailure(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(&fakeProductRepo{failWrite: true})
	if _, err := svc.Create(ctx, model.Product{ID: "p1", Name: "A", Price: 1, CategoryID: "c1"}); !errors.Is(err, repository.ErrWriteFailed) {
		t.Fatalf("expected write failure, got %v", err)
	}
}
