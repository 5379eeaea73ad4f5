// Package ecs provides ECS adapters for panes.
package ecs

import (
	"github.com/phanxgames/panes"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PositionChangedType is the Donburi event type for committed element writes.
// Subscribe to this in your ECS systems to react to pane moves and resizes.
var PositionChangedType = events.NewEventType[panes.ChangeEvent]()

// PositionComponent mirrors the data of a tracked Position on its entity.
var PositionComponent = donburi.NewComponentType[panes.PositionData]()

// DonburiSink is a panes.ChangeSink backed by a Donburi world.
type DonburiSink struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewDonburiSink creates a ChangeSink backed by a Donburi world.
// Changes are published to PositionChangedType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entities: make(map[uint32]donburi.Entity)}
}

// Track creates an entity carrying PositionComponent for p. Later writes of
// p keep the component current.
func (s *DonburiSink) Track(p *panes.Position) donburi.Entity {
	if e, ok := s.entities[p.ID()]; ok && s.world.Valid(e) {
		return e
	}
	e := s.world.Create(PositionComponent)
	PositionComponent.SetValue(s.world.Entry(e), p.Data())
	s.entities[p.ID()] = e
	return e
}

// Untrack forgets the entity of p without removing it from the world.
func (s *DonburiSink) Untrack(p *panes.Position) {
	delete(s.entities, p.ID())
}

// Entity returns the entity tracking the position with the given id.
func (s *DonburiSink) Entity(id uint32) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	if ok && !s.world.Valid(e) {
		delete(s.entities, id)
		return e, false
	}
	return e, ok
}

// EmitChange implements panes.ChangeSink.
func (s *DonburiSink) EmitChange(event panes.ChangeEvent) {
	if e, ok := s.Entity(event.PositionID); ok {
		PositionComponent.SetValue(s.world.Entry(e), event.Data)
	}
	PositionChangedType.Publish(s.world, event)
}
