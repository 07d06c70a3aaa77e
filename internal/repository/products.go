package repository

import (
	"context"
	"fmt"

	"admin-dashboard-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProductRepository cubre el CRUD paralelo de productos.
type MongoProductRepository struct {
	products   *mongo.Collection
	categories *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		products:   db.Collection("products"),
		categories: db.Collection("categories"),
	}
}

// FindAll lista los productos con su categoría resuelta.
func (m *MongoProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	cur, err := m.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer cur.Close(ctx)

	var out []model.Product
	for cur.Next(ctx) {
		var p model.Product
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		out = append(out, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	if err := m.resolveCategories(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoProductRepository) resolveCategories(ctx context.Context, products []model.Product) error {
	idSet := make(map[string]struct{})
	for _, p := range products {
		if p.CategoryID != "" {
			idSet[p.CategoryID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	cur, err := m.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer cur.Close(ctx)

	byID := make(map[string]model.Category)
	for cur.Next(ctx) {
		var c model.Category
		if err := cur.Decode(&c); err != nil {
			return fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		byID[c.ID] = c
	}
	if err := cur.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	for i := range products {
		if c, ok := byID[products[i].CategoryID]; ok {
			cat := c
			products[i].Category = &cat
		}
	}
	return nil
}

func (m *MongoProductRepository) Create(ctx context.Context, p *model.Product) error {
	if _, err := m.products.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func (m *MongoProductRepository) Update(ctx context.Context, p *model.Product) error {
	res, err := m.products.UpdateOne(ctx,
		bson.M{"_id": p.ID},
		bson.M{"$set": bson.M{
			"name":        p.Name,
			"price":       p.Price,
			"quantity":    p.Quantity,
			"image":       p.Image,
			"category_id": p.CategoryID,
		}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoProductRepository) Delete(ctx context.Context, id string) error {
	res, err := m.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
