// Package ecs provides ECS adapters for swipe.
package ecs

import (
	"github.com/phanxgames/swipe"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CardEvent is one engine event forwarded into a Donburi world. Type tells
// which of the payload fields is set.
type CardEvent struct {
	Type      swipe.EventType
	Gesture   swipe.GestureContext
	Decision  swipe.SwipeDecision
	Selection swipe.ReactionSelection
}

// CardEventType is the Donburi event type for swipe engine events.
// Subscribe to this in your ECS systems to receive gestures, decisions and
// reaction selections.
var CardEventType = events.NewEventType[CardEvent]()

// Bridge forwards engine events to a world until detached.
type Bridge struct {
	world   donburi.World
	handles []swipe.CallbackHandle
}

// Attach registers engine observers that publish to CardEventType.
// Published events are queued and delivered by ProcessEvents.
func Attach(world donburi.World, engine *swipe.Engine) *Bridge {
	b := &Bridge{world: world}
	b.handles = append(b.handles,
		engine.OnGesture(func(ctx swipe.GestureContext) {
			b.emit(CardEvent{Type: swipe.EventGesture, Gesture: ctx})
		}),
		engine.OnDecision(func(ctx swipe.DecisionContext) {
			b.emit(CardEvent{Type: swipe.EventDecision, Decision: ctx.Decision})
		}),
		engine.OnSelection(func(ctx swipe.SelectionContext) {
			b.emit(CardEvent{Type: swipe.EventSelection, Selection: ctx.Selection})
		}),
	)
	return b
}

func (b *Bridge) emit(e CardEvent) {
	CardEventType.Publish(b.world, e)
}

// Detach removes the engine observers. Events already published stay
// queued in the world.
func (b *Bridge) Detach() {
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
}
