// Package ecs provides ECS adapters for qtads's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges viewer interaction
// events (link activation, hover changes, selection changes) into a [Donburi]
// world as typed events. Subscribe to [InteractionEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	view.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
