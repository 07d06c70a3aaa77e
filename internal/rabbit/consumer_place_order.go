package rabbit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"admin-dashboard-service/internal/dto"
	"admin-dashboard-service/internal/model"

	"github.com/google/uuid"
)

// OrderInserter es lo único que el consumer necesita del repositorio.
type OrderInserter interface {
	Insert(ctx context.Context, o *model.Order) error
}

// PlaceOrderConsumer ingresa al almacén las órdenes que coloca el
// storefront. El dashboard solo lee, actualiza status o borra; crear
// órdenes es trabajo de este worker.
type PlaceOrderConsumer struct {
	Repo OrderInserter
}

func NewPlaceOrderConsumer(repo OrderInserter) *PlaceOrderConsumer {
	return &PlaceOrderConsumer{Repo: repo}
}

type PlacedOrderMessage struct {
	CorrelationID string                 `json:"correlation_id"`
	Exchange      string                 `json:"exchange"`
	RoutingKey    string                 `json:"routing_key"`
	Message       dto.PlacedOrderPayload `json:"message"`
}

func (c *PlaceOrderConsumer) Handle(msg []byte) error {
	log.Println("[Rabbit] Evento recibido: order_placed")

	var event PlacedOrderMessage
	if err := json.Unmarshal(msg, &event); err != nil {
		log.Println("Error parseando mensaje:", err)
		return err
	}

	order := payloadToOrder(event.Message)

	if err := c.Repo.Insert(context.Background(), &order); err != nil {
		log.Println("Error guardando orden entrante:", err)
		return err
	}

	log.Println("Orden ingresada:", order.ID)
	return nil
}

func payloadToOrder(p dto.PlacedOrderPayload) model.Order {
	order := model.Order{
		ID:            p.OrderID,
		PaymentMethod: p.PaymentMethod,
		Subtotal:      p.Subtotal,
		Shipping:      p.Shipping,
		Discount:      p.Discount,
		Total:         p.Total,
		OrderDate:     p.OrderDate,
		Notes:         p.Notes,
		// el status queda sin asignar: la vista lo trata como pendiente
	}

	// Si el storefront no mandó id o fecha, se completan acá
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}

	order.Customer = model.Customer{
		FirstName: p.Customer.FirstName,
		LastName:  p.Customer.LastName,
		Email:     p.Customer.Email,
		Phone:     p.Customer.Phone,
		Subscribe: p.Customer.Subscribe,
		Address: model.Address{
			Street1: p.Customer.Address.Street1,
			Street2: p.Customer.Address.Street2,
			City:    p.Customer.Address.City,
			Country: p.Customer.Address.Country,
		},
	}

	for _, it := range p.Items {
		order.Items = append(order.Items, model.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return order
}
