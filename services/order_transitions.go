package services

import "github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

// statuses an order may be in before moving to the key status
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderProcessing: {entity.OrderPending},
	entity.OrderDelivered:  {entity.OrderProcessing},
	entity.OrderCancelled:  {entity.OrderPending, entity.OrderProcessing},
}

// CanTransition reports whether an order in from may move to to.
func CanTransition(from, to entity.OrderStatus) bool {
	for _, s := range transitions[to] {
		if s == from {
			return true
		}
	}
	return false
}
