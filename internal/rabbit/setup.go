// setup.go
package rabbit

import (
	"log"

	"github.com/rabbitmq/amqp091-go"
)

func SetupConsumers(ch *amqp091.Channel, repo OrderInserter) {
	consumer := NewPlaceOrderConsumer(repo)

	// 1. Declarar la queue
	q, err := ch.QueueDeclare(
		"admin_dashboard_orders", // cola exclusiva para este servicio
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Println("Error declarando queue:", err)
		return
	}

	// 2. Bindear al exchange fanout
	err = ch.QueueBind(
		q.Name,
		"",             // fanout ignora routing key
		"order_placed", // exchange del storefront
		false,
		nil,
	)
	if err != nil {
		log.Println("Error binding exchange:", err)
		return
	}

	// 3. Consumir
	msgs, err := ch.Consume(
		q.Name,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Println("Error al consumir queue:", err)
		return
	}

	go func() {
		for m := range msgs {
			consumer.Handle(m.Body)
		}
	}()

	log.Println("Suscrito a exchange order_placed (fanout)")
}
