/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const qrSize = 320

// joinURL is the link encoded in a room's QR code; the client page reads the
// room parameter and joins on load.
func joinURL(cfg *Config, r *http.Request, room string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     cfg.prefix + "/",
		RawQuery: url.Values{"room": {room}}.Encode(),
	}

	return u.String()
}

// serveQR renders a PNG QR code linking to an active room.
func serveQR(cfg *Config, store Store, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		room := strings.ToUpper(ps.ByName("room"))

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		_, err := store.Get(ctx, room)
		switch {
		case errors.Is(err, ErrRoomNotFound):
			http.Error(w, ErrRoomNotFound.Error(), http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, ErrStoreUnavailable.Error(), http.StatusServiceUnavailable)
			return
		}

		png, err := qrcode.Encode(joinURL(cfg, r, room), qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)

		if _, err := w.Write(png); err != nil {
			errs <- err
		}
	}
}
