/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

// Spelling Bee
//
// One player creates a room and shares its six-letter code; others join with
// it. Every room is dealt a fixed list of words up front. Players take turns
// in join order, each spelling the word for the current turn. A wrong answer
// costs a life, and a player who runs out of lives is dropped from the room.
// Rooms disappear as soon as the last player leaves.
//
// Handlers for the same room may run concurrently. Room state is only changed
// through the Store's atomic operations, never read and written back, and
// broadcasts are built from the session each store call returns.

package main

import (
	"context"
	"errors"
	"strings"
)

const codeAttempts = 8

// WordProvider deals the word list for a new room.
type WordProvider interface {
	Provide(ctx context.Context, count int) ([]string, error)
}

// CodeGenerator hands out candidate room codes.
type CodeGenerator interface {
	Generate() (string, error)
}

type Coordinator struct {
	cfg      *Config
	store    Store
	registry *Registry
	words    WordProvider
	codes    CodeGenerator
}

func newCoordinator(cfg *Config, store Store, registry *Registry, words WordProvider, codes CodeGenerator) *Coordinator {
	return &Coordinator{
		cfg:      cfg,
		store:    store,
		registry: registry,
		words:    words,
		codes:    codes,
	}
}

func displayNameFor(p Participant, name string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}

	id := p.ID()
	if len(id) > 4 {
		id = id[:4]
	}
	return "Player-" + strings.ToUpper(id)
}

// CreateRoom starts a new room with the caller as its only player.
func (c *Coordinator) CreateRoom(ctx context.Context, caller Participant, displayName string) (CreateRoomReply, error) {
	if _, ok := c.registry.Room(caller.ID()); ok {
		return CreateRoomReply{}, ErrAlreadyInRoom
	}

	words, err := c.words.Provide(ctx, c.cfg.wordCount)
	if err != nil {
		return CreateRoomReply{}, unavailable(err)
	}

	session := &Session{
		Players: []Player{{
			ID:          caller.ID(),
			DisplayName: displayNameFor(caller, displayName),
			Lives:       startingLives,
		}},
		Turn:     0,
		WordList: words,
	}

	for attempt := 0; ; attempt++ {
		session.Room, err = c.codes.Generate()
		if err != nil {
			return CreateRoomReply{}, unavailable(err)
		}

		err = c.store.Create(ctx, session)
		if !errors.Is(err, ErrRoomExists) {
			break
		}
		if attempt+1 == codeAttempts {
			return CreateRoomReply{}, unavailable(err)
		}
	}
	if err != nil {
		return CreateRoomReply{}, err
	}

	if err := c.registry.Join(session.Room, caller); err != nil {
		c.removePlayer(ctx, session.Room, caller.ID())
		return CreateRoomReply{}, err
	}

	logf(c.cfg, "ROOMS: %q created room %s", session.Players[0].DisplayName, session.Room)

	return CreateRoomReply{
		CurrentWord: session.CurrentWord(),
		RoomCode:    session.Room,
	}, nil
}

// JoinRoom appends the caller to an existing room's roster.
func (c *Coordinator) JoinRoom(ctx context.Context, caller Participant, roomCode, displayName string) (JoinRoomReply, error) {
	roomCode = strings.ToUpper(strings.TrimSpace(roomCode))
	if roomCode == "" {
		return JoinRoomReply{}, ErrMalformedPayload
	}

	if _, ok := c.registry.Room(caller.ID()); ok {
		return JoinRoomReply{}, ErrAlreadyInRoom
	}

	player := Player{
		ID:          caller.ID(),
		DisplayName: displayNameFor(caller, displayName),
		Lives:       startingLives,
	}

	session, err := c.store.AddPlayer(ctx, roomCode, player)
	if err != nil {
		return JoinRoomReply{}, err
	}

	if err := c.registry.Join(roomCode, caller); err != nil {
		c.removePlayer(ctx, roomCode, caller.ID())
		return JoinRoomReply{}, err
	}

	logf(c.cfg, "ROOMS: %q joined room %s", player.DisplayName, roomCode)

	c.registry.Broadcast(roomCode, playerListUpdate(session))

	return JoinRoomReply{CurrentWord: session.CurrentWord()}, nil
}

// EndTurn checks the caller's attempt, charges a life for a wrong answer and
// moves the room on to the next turn either way.
func (c *Coordinator) EndTurn(ctx context.Context, callerID, attempt, expected string) (bool, error) {
	if expected == "" {
		return false, ErrMalformedPayload
	}

	room, ok := c.registry.Room(callerID)
	if !ok {
		return false, ErrNotInRoom
	}

	correct := attempt == expected

	if !correct {
		session, lives, err := c.store.LoseLife(ctx, room, callerID)
		if err != nil {
			return false, err
		}

		p, _ := session.player(callerID)
		logf(c.cfg, "ROOMS: %q misspelled %q in room %s (%d lives left)", p.DisplayName, expected, room, lives)

		if lives == 0 {
			deleted, err := c.removePlayer(ctx, room, callerID)
			if err != nil {
				return false, err
			}

			if _, conn, ok := c.registry.Leave(callerID); ok {
				conn.Send(ServerMessage{Type: eventEliminated})
			}
			if deleted {
				return false, nil
			}
		}
	}

	if _, err := c.advanceTurn(ctx, room); err != nil && !errors.Is(err, ErrWordsExhausted) {
		return correct, err
	}

	return correct, nil
}

// NextTurn advances the caller's room without an attempt.
func (c *Coordinator) NextTurn(ctx context.Context, callerID string) error {
	room, ok := c.registry.Room(callerID)
	if !ok {
		return ErrNotInRoom
	}

	_, err := c.advanceTurn(ctx, room)

	return err
}

// Disconnect drops the connection from its room, if it was in one. The
// connection stays registered until the store has let go of the player, so a
// failed call can be retried. Calling it again after success does nothing.
func (c *Coordinator) Disconnect(ctx context.Context, callerID string) error {
	room, ok := c.registry.Room(callerID)
	if !ok {
		return nil
	}

	if _, err := c.removePlayer(ctx, room, callerID); err != nil {
		return err
	}

	c.registry.Leave(callerID)

	return nil
}

// advanceTurn bumps the turn counter and announces the new word and player,
// both taken from the session the increment returned. Running out of words
// finishes the game; only the call that finishes it announces gameOver.
func (c *Coordinator) advanceTurn(ctx context.Context, room string) (*Session, error) {
	session, err := c.store.AdvanceTurn(ctx, room)
	if errors.Is(err, ErrWordsExhausted) {
		final, finished, err := c.store.Finish(ctx, room)
		if err != nil {
			return nil, err
		}
		if finished {
			logf(c.cfg, "ROOMS: Room %s ran out of words", room)
			c.registry.Broadcast(room, ServerMessage{
				Type: eventGameOver,
				Data: GameOverMessage{Players: final.Players, Revision: final.Revision},
			})
		}
		return nil, ErrWordsExhausted
	}
	if err != nil {
		return nil, err
	}

	next := NextWordMessage{
		CurrentWord: session.CurrentWord(),
		Turn:        session.Turn,
		Revision:    session.Revision,
	}
	if p, ok := session.CurrentPlayer(); ok {
		next.CurrentPlayerID = p.ID
	}

	c.registry.Broadcast(room, ServerMessage{Type: eventNextWord, Data: next})

	return session, nil
}

// removePlayer is the single path by which a player leaves a roster, whether
// through disconnecting or running out of lives. It reports whether the room
// was deleted as a result.
func (c *Coordinator) removePlayer(ctx context.Context, room, id string) (bool, error) {
	session, removed, err := c.store.RemovePlayer(ctx, room, id)
	if errors.Is(err, ErrRoomNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if removed {
		logf(c.cfg, "ROOMS: Player %s left room %s", id, room)
		c.registry.Broadcast(room, playerListUpdate(session))
	}

	if len(session.Players) > 0 {
		return false, nil
	}

	deleted, err := c.store.DeleteIfEmpty(ctx, room)
	if err != nil {
		return false, err
	}
	if deleted {
		logf(c.cfg, "ROOMS: Deleted empty room %s", room)
	}

	return deleted, nil
}
