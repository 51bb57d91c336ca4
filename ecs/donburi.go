// Package ecs provides ECS adapters for shapesync.
package ecs

import (
	"github.com/phanxgames/shapesync"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MutationEventType is the Donburi event type for shapesync tree mutations.
// Subscribe to this in your ECS systems to react to reconciled shapes.
var MutationEventType = events.NewEventType[shapesync.MutationEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a MutationSink backed by a Donburi world.
// Mutations are published to MutationEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) shapesync.MutationSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Mutated(ev shapesync.MutationEvent) {
	MutationEventType.Publish(s.world, ev)
}
