/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomExists       = errors.New("room already exists")
	ErrStoreUnavailable = errors.New("service unavailable")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrNotInRoom        = errors.New("not in a room")
	ErrAlreadyInRoom    = errors.New("already in a room")
	ErrWordsExhausted   = errors.New("no words remaining")
)

// replyError maps an operation error onto the string sent back to the client.
// Anything unrecognised is reported as the service being unavailable.
func replyError(err error) string {
	for _, known := range []error{
		ErrRoomNotFound,
		ErrMalformedPayload,
		ErrNotInRoom,
		ErrAlreadyInRoom,
		ErrWordsExhausted,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return ErrStoreUnavailable.Error()
}

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}

func newPage(title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	htmlBody.WriteString(`<style>`)
	htmlBody.WriteString(`html,body,a{display:block;height:100%;width:100%;text-decoration:none;color:inherit;cursor:auto;}</style>`)
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", title))
	htmlBody.WriteString(fmt.Sprintf("<body><a href=\"/\">%s</a></body></html>", body))

	return htmlBody.String()
}
