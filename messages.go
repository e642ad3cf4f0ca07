/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

// Events sent by clients
const (
	eventCreateRoom  = "createRoom"
	eventJoiningRoom = "joiningRoom"
	eventEndTurn     = "endTurn"
	eventNextTurn    = "nextTurn"
)

// Events sent by the server
const (
	eventReply            = "reply"
	eventPlayerListUpdate = "playerListUpdate"
	eventNextWord         = "nextWord"
	eventGameOver         = "gameOver"
	eventEliminated       = "eliminated"
)

// ClientMessage is the envelope for every inbound event. ID is echoed back on
// the matching reply so clients can pair them up.
type ClientMessage struct {
	Type        string `json:"type"`
	ID          uint64 `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"` // createRoom / joiningRoom
	RoomCode    string `json:"roomCode,omitempty"`    // joiningRoom
	Attempt     string `json:"attempt"`               // endTurn
	CurrentWord string `json:"currentWord,omitempty"` // endTurn
}

// ServerMessage is the envelope for replies and broadcasts.
type ServerMessage struct {
	Type  string `json:"type"`
	ID    uint64 `json:"id,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type CreateRoomReply struct {
	CurrentWord string `json:"currentWord"`
	RoomCode    string `json:"roomCode"`
}

type JoinRoomReply struct {
	CurrentWord string `json:"currentWord"`
}

// Broadcasts carry the session revision they were built from. Concurrent
// handlers can deliver them out of order, so clients keep only the highest
// revision seen for each event type.

type RosterMessage struct {
	Players  []Player `json:"players"`
	Revision int      `json:"revision"`
}

type NextWordMessage struct {
	CurrentWord     string `json:"currentWord"`
	CurrentPlayerID string `json:"currentPlayerId"`
	Turn            int    `json:"turn"`
	Revision        int    `json:"revision"`
}

type GameOverMessage struct {
	Players  []Player `json:"players"`
	Revision int      `json:"revision"`
}

func reply(id uint64, data any, err error) ServerMessage {
	if err != nil {
		return ServerMessage{Type: eventReply, ID: id, Error: replyError(err)}
	}
	return ServerMessage{Type: eventReply, ID: id, Data: data}
}

func playerListUpdate(s *Session) ServerMessage {
	players := s.Players
	if players == nil {
		players = []Player{}
	}
	return ServerMessage{
		Type: eventPlayerListUpdate,
		Data: RosterMessage{Players: players, Revision: s.Revision},
	}
}
