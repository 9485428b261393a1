// Package orders turns cart snapshots into immutable orders and projects
// order statuses for display.
package orders

import (
	"fmt"

	"github.com/SebastianPortocarrero/TFVitanza/cart"
	"github.com/SebastianPortocarrero/TFVitanza/models"
)

const (
	// DeliveryFee is the flat surcharge applied to delivery orders.
	DeliveryFee = 5.0
	// DefaultEstimatedMinutes is the initial preparation estimate for every
	// new order.
	DefaultEstimatedMinutes = 30
)

// ValidationError reports a checkout problem the user must fix. It is
// surfaced inline and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a checkout validation failure.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Draft is a fully computed order ready to be persisted. Once persisted the
// contents and totals are frozen; only the status changes afterwards.
type Draft struct {
	Entries         []cart.Entry
	Subtotal        float64
	DeliveryFee     float64
	Total           float64
	FulfillmentType models.FulfillmentType
	DeliveryAddress string
	DeliveryPhone   string
	PaymentMethod   models.PaymentMethod
	Status          models.OrderStatus
	EstimatedTime   int
}

// Assemble validates the checkout input and computes the order totals:
// subtotal is the sum of customized price times quantity, the delivery fee
// applies only to delivery fulfillment, total is their sum. Assemble has no
// side effects; a validation failure leaves nothing behind.
func Assemble(entries []cart.Entry, fulfillment models.FulfillmentType, address, phone string, payment models.PaymentMethod) (Draft, error) {
	if len(entries) == 0 {
		return Draft{}, &ValidationError{Reason: "el carrito está vacío"}
	}
	if phone == "" {
		return Draft{}, &ValidationError{Reason: "el teléfono es requerido"}
	}
	if fulfillment == models.FulfillmentDelivery && address == "" {
		return Draft{}, &ValidationError{Reason: "la dirección de entrega es requerida"}
	}
	switch fulfillment {
	case models.FulfillmentDelivery, models.FulfillmentPickup, models.FulfillmentDineIn:
	default:
		return Draft{}, &ValidationError{Reason: fmt.Sprintf("tipo de entrega inválido: %s", fulfillment)}
	}

	var subtotal float64
	for _, e := range entries {
		subtotal += e.Price * float64(e.Quantity)
	}

	fee := 0.0
	if fulfillment == models.FulfillmentDelivery {
		fee = DeliveryFee
	}

	if payment == "" {
		payment = models.PaymentCard
	}
	if fulfillment != models.FulfillmentDelivery {
		address = ""
	}

	return Draft{
		Entries:         entries,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Total:           subtotal + fee,
		FulfillmentType: fulfillment,
		DeliveryAddress: address,
		DeliveryPhone:   phone,
		PaymentMethod:   payment,
		Status:          models.OrderStatusReceived,
		EstimatedTime:   DefaultEstimatedMinutes,
	}, nil
}

// Record builds the persistable Order from a draft. The caller assigns the
// id and owns the insert transaction.
func (d Draft) Record(id, userID string) models.Order {
	items := make([]models.OrderItem, 0, len(d.Entries))
	for _, e := range d.Entries {
		items = append(items, models.OrderItem{
			OrderID:         id,
			MenuItemID:      e.Item.ID,
			Name:            e.Item.Name,
			Price:           e.Item.Price,
			Quantity:        e.Quantity,
			Macros:          e.Macros,
			CustomizedPrice: e.Price,
		})
	}

	return models.Order{
		ID:              id,
		UserID:          userID,
		Items:           items,
		Subtotal:        d.Subtotal,
		DeliveryFee:     d.DeliveryFee,
		Total:           d.Total,
		Status:          d.Status,
		FulfillmentType: d.FulfillmentType,
		DeliveryAddress: d.DeliveryAddress,
		DeliveryPhone:   d.DeliveryPhone,
		PaymentMethod:   d.PaymentMethod,
		EstimatedTime:   d.EstimatedTime,
	}
}
