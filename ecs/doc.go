// Package ecs provides ECS adapters for shapesync's mutation event stream.
//
// The primary adapter is [NewDonburiSink], which bridges shapesync tree
// mutations (attribute sets, attribute removals, child insertions) into a
// [Donburi] world as typed events. Subscribe to [MutationEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	tree.SetMutationSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
