// dto.go
package dto

import "time"

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type MetricsResponse struct {
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalEarnings  float64 `json:"totalEarnings"`
}

// DailySalesPoint es un punto de las gráficas del dashboard (órdenes y
// ventas por día).
type DailySalesPoint struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Orders int     `json:"orders"`
	Sales  float64 `json:"sales"`
}

type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category" binding:"required"`
	Image    string  `json:"image"`
}

type UpdateProductRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category" binding:"required"`
	Image    string  `json:"image"`
}

type DeleteProductRequest struct {
	ID string `json:"id" binding:"required"`
}

// PlacedOrderPayload es el cuerpo que publica el storefront al colocar
// una orden (lo consume el worker de Rabbit).
type PlacedOrderPayload struct {
	OrderID  string `json:"orderId"`
	Customer struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   struct {
			Street1 string `json:"street1"`
			Street2 string `json:"street2"`
			City    string `json:"city"`
			Country string `json:"country"`
		} `json:"address"`
		Subscribe bool `json:"subscribe"`
	} `json:"customer"`
	Items []struct {
		ProductID string  `json:"productId"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	} `json:"items"`
	PaymentMethod string    `json:"paymentMethod"`
	Subtotal      float64   `json:"subtotal"`
	Shipping      float64   `json:"shipping"`
	Discount      float64   `json:"discount"`
	Total         float64   `json:"total"`
	OrderDate     time.Time `json:"orderDate"`
	Notes         string    `json:"notes"`
}
