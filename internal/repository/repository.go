package repository

import (
	"context"
	"errors"
	"fmt"

	"admin-dashboard-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Errores del adaptador. Lectura y escritura se distinguen para que el
// controller pueda reportarlos por separado.
var (
	ErrNotFound    = errors.New("documento no encontrado")
	ErrReadFailed  = errors.New("lectura remota fallida")
	ErrWriteFailed = errors.New("escritura remota fallida")
)

// Mongo implementation
type MongoOrderRepository struct {
	orders   *mongo.Collection
	products *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		orders:   db.Collection("orders"),
		products: db.Collection("products"),
	}
}

// FindAll trae todas las órdenes y resuelve las referencias de producto
// de cada línea (title e imagen) contra la colección de productos.
// Si algo falla NO se devuelven resultados parciales.
func (m *MongoOrderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	cur, err := m.orders.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer cur.Close(ctx)

	var out []model.Order
	for cur.Next(ctx) {
		var o model.Order
		if err := cur.Decode(&o); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		out = append(out, o)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	if err := m.resolveProducts(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// resolveProducts hace una sola consulta $in y cruza en memoria.
// Una referencia rota deja title/image vacíos, no es error.
func (m *MongoOrderRepository) resolveProducts(ctx context.Context, orders []model.Order) error {
	idSet := make(map[string]struct{})
	for _, o := range orders {
		for _, it := range o.Items {
			if it.ProductID != "" {
				idSet[it.ProductID] = struct{}{}
			}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	cur, err := m.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer cur.Close(ctx)

	byID := make(map[string]model.Product)
	for cur.Next(ctx) {
		var p model.Product
		if err := cur.Decode(&p); err != nil {
			return fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		byID[p.ID] = p
	}
	if err := cur.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	for i := range orders {
		for j := range orders[i].Items {
			if p, ok := byID[orders[i].Items[j].ProductID]; ok {
				orders[i].Items[j].Title = p.Name
				orders[i].Items[j].Image = p.Image
			}
		}
	}
	return nil
}

// UpdateStatus parchea únicamente el campo status; el almacén lo aplica
// de forma atómica. No valida el valor contra el catálogo.
func (m *MongoOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	res, err := m.orders.UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoOrderRepository) Delete(ctx context.Context, orderID string) error {
	res, err := m.orders.DeleteOne(ctx, bson.M{"_id": orderID})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if res.DeletedCount == 0 {
		// borrar un id ya borrado falla, no es éxito silencioso
		return ErrNotFound
	}
	return nil
}

// Insert lo usa solamente el consumer de Rabbit al ingresar órdenes
// nuevas del storefront. El dashboard nunca crea órdenes.
func (m *MongoOrderRepository) Insert(ctx context.Context, o *model.Order) error {
	if _, err := m.orders.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
