// Package ecs provides ECS adapters for swipe's engine events.
//
// The primary adapter is [Attach], which bridges resolved gestures, swipe
// decisions and reaction selections into a [Donburi] world as typed
// events. Subscribe to [CardEventType] in your ECS systems to receive them.
//
// Usage:
//
//	bridge := ecs.Attach(world, engine)
//	defer bridge.Detach()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
