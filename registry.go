/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import "sync"

// Participant is a connected client that can be addressed by the registry.
type Participant interface {
	ID() string
	Send(msg ServerMessage)
}

// Registry tracks which room each connection belongs to. It does not know
// anything about game state; the store is the authority for the roster.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[string]map[string]Participant
	members map[string]string
}

func newRegistry() *Registry {
	return &Registry{
		rooms:   make(map[string]map[string]Participant),
		members: make(map[string]string),
	}
}

// Join adds p to room. A connection may only be in one room at a time.
func (r *Registry) Join(room string, p Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[p.ID()]; ok {
		return ErrAlreadyInRoom
	}

	participants, ok := r.rooms[room]
	if !ok {
		participants = make(map[string]Participant)
		r.rooms[room] = participants
	}
	participants[p.ID()] = p
	r.members[p.ID()] = room

	return nil
}

// Leave removes the connection from whatever room it is in, returning that
// room and the participant that was registered.
func (r *Registry) Leave(id string) (string, Participant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.members[id]
	if !ok {
		return "", nil, false
	}
	delete(r.members, id)

	p := r.rooms[room][id]
	delete(r.rooms[room], id)
	if len(r.rooms[room]) == 0 {
		delete(r.rooms, room)
	}

	return room, p, true
}

// Room returns the room the connection is in.
func (r *Registry) Room(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.members[id]
	return room, ok
}

// Participants returns a snapshot of everyone connected to room.
func (r *Registry) Participants(room string) []Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	participants := make([]Participant, 0, len(r.rooms[room]))
	for _, p := range r.rooms[room] {
		participants = append(participants, p)
	}
	return participants
}

// Broadcast sends msg to every participant of room. Sends happen outside the
// lock; Participant.Send must not block.
func (r *Registry) Broadcast(room string, msg ServerMessage) {
	for _, p := range r.Participants(room) {
		p.Send(msg)
	}
}
