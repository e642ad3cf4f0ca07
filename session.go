/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import "slices"

const startingLives = 3

// Player is a single participant in a room. The id is the connection id the
// player joined with.
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Lives       int    `json:"lives"`
}

// Session is the persisted state of one room. Revision is bumped by every
// store operation that changes the session, so it orders snapshots of the
// same room.
type Session struct {
	Room     string   `json:"room"`
	Players  []Player `json:"players"`
	Turn     int      `json:"turn"`
	WordList []string `json:"wordList"`
	Revision int      `json:"revision"`
	Finished bool     `json:"finished"`
}

func (s *Session) clone() *Session {
	return &Session{
		Room:     s.Room,
		Players:  slices.Clone(s.Players),
		Turn:     s.Turn,
		WordList: slices.Clone(s.WordList),
		Revision: s.Revision,
		Finished: s.Finished,
	}
}

// CurrentWord is the word for the current turn, or "" once the list is
// exhausted.
func (s *Session) CurrentWord() string {
	if s.Turn < 0 || s.Turn >= len(s.WordList) {
		return ""
	}
	return s.WordList[s.Turn]
}

// CurrentPlayer returns the player whose turn it is, using the roster as it
// stands in this snapshot.
func (s *Session) CurrentPlayer() (Player, bool) {
	if len(s.Players) == 0 {
		return Player{}, false
	}
	return s.Players[s.Turn%len(s.Players)], true
}

func (s *Session) player(id string) (Player, bool) {
	i := s.playerIndex(id)
	if i < 0 {
		return Player{}, false
	}
	return s.Players[i], true
}

func (s *Session) playerIndex(id string) int {
	return slices.IndexFunc(s.Players, func(p Player) bool {
		return p.ID == id
	})
}
