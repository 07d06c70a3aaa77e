// models.go
package model

import "time"

// Estados conocidos de una orden. El almacén NO valida este catálogo:
// un status desconocido (o vacío) se conserva tal cual llega.
const (
	StatusPending  = "pending"
	StatusDispatch = "dispatch"
	StatusSuccess  = "success"
)

// KnownStatuses es el catálogo que la capa de presentación ofrece al usuario.
var KnownStatuses = []string{StatusPending, StatusDispatch, StatusSuccess}

// Order es una orden de compra con el snapshot del cliente desnormalizado
// al momento de la compra (no es una referencia viva).
type Order struct {
	ID            string     `bson:"_id" json:"id"`
	Customer      Customer   `bson:"customer" json:"customer"`
	Items         []LineItem `bson:"items" json:"items"`
	PaymentMethod string     `bson:"payment_method" json:"paymentMethod"`
	Subtotal      float64    `bson:"subtotal" json:"subtotal"`
	Shipping      float64    `bson:"shipping" json:"shipping"`
	Discount      float64    `bson:"discount" json:"discount"`
	Total         float64    `bson:"total" json:"total"`
	OrderDate     time.Time  `bson:"order_date" json:"orderDate"`
	Notes         string     `bson:"notes" json:"notes"`
	Status        string     `bson:"status,omitempty" json:"status"` // vacío = pendiente/sin asignar
}

type Customer struct {
	FirstName string  `bson:"first_name" json:"firstName"`
	LastName  string  `bson:"last_name" json:"lastName"`
	Email     string  `bson:"email" json:"email"`
	Phone     string  `bson:"phone" json:"phone"`
	Address   Address `bson:"address" json:"address"`
	Subscribe bool    `bson:"subscribe" json:"subscribe"`
}

type Address struct {
	Street1 string `bson:"street1" json:"street1"`
	Street2 string `bson:"street2,omitempty" json:"street2,omitempty"`
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
}

// LineItem referencia un producto por id; Title e Image se resuelven
// contra la colección de productos al listar.
type LineItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Title     string  `bson:"-" json:"title"`
	Image     string  `bson:"-" json:"image"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// Product pertenece al CRUD paralelo de productos.
type Product struct {
	ID         string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Price      float64   `bson:"price" json:"price"`
	Quantity   int       `bson:"quantity" json:"quantity"`
	Image      string    `bson:"image" json:"image"`
	CategoryID string    `bson:"category_id" json:"-"`
	Category   *Category `bson:"-" json:"category,omitempty"`
}

type Category struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}
