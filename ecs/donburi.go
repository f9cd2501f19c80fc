// Package ecs provides ECS adapters for qtads.
package ecs

import (
	"github.com/denispokataev/qtads"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for qtads interaction events.
// Subscribe to this in your ECS systems to receive activation, hover, and
// selection events.
var InteractionEventType = events.NewEventType[qtads.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) qtads.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event qtads.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
