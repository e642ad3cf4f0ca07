/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"crypto/rand"
)

const (
	roomCodeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	roomCodeLength  = 6
)

// roomCodes generates crypto-random room codes. Uniqueness against active
// rooms is checked by the store when the room is created.
type roomCodes struct{}

func (roomCodes) Generate() (string, error) {
	buf := make([]byte, roomCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	out := make([]byte, roomCodeLength)
	for i := range out {
		out[i] = roomCodeLetters[int(buf[i])%len(roomCodeLetters)]
	}

	return string(out), nil
}
