package domain

import (
	"strconv"
	"time"
)

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ClientRegisteredEvent is emitted when a client is registered.
type ClientRegisteredEvent struct {
	ClientID     int64
	Code         string
	Name         string
	RegisteredAt time.Time
}

func (e *ClientRegisteredEvent) EventType() string {
	return "client.registered"
}

func (e *ClientRegisteredEvent) AggregateID() string {
	return strconv.FormatInt(e.ClientID, 10)
}

// ProductRegisteredEvent is emitted when a product is registered under a
// client.
type ProductRegisteredEvent struct {
	ProductID    int64
	ClientID     int64
	Name         string
	RegisteredAt time.Time
}

func (e *ProductRegisteredEvent) EventType() string {
	return "product.registered"
}

func (e *ProductRegisteredEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

// EquivalenceEstablishedEvent is emitted when an equivalence pair is
// created. The pair is already normalized: ProductIDA < ProductIDB.
type EquivalenceEstablishedEvent struct {
	ProductIDA    int64
	ProductIDB    int64
	EstablishedAt time.Time
}

func (e *EquivalenceEstablishedEvent) EventType() string {
	return "equivalence.established"
}

func (e *EquivalenceEstablishedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductIDA, 10) + ":" + strconv.FormatInt(e.ProductIDB, 10)
}
