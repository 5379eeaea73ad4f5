// Package ecs provides ECS adapters for the panes change stream.
//
// The primary adapter is [NewDonburiSink], which bridges committed element
// writes into a [Donburi] world as typed events. Subscribe to
// [PositionChangedType] in your ECS systems to receive them, or call
// [DonburiSink.Track] to mirror a position onto an entity's
// [PositionComponent].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetChangeSink(sink)
//	sink.Track(pane.Position())
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
