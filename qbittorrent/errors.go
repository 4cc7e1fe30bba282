package qbittorrent

import "errors"

// Common errors returned by the qBittorrent client.
var (
	// ErrInvalidHash is returned when a force-start change names no torrents.
	ErrInvalidHash = errors.New("invalid torrent hash")

	// ErrConnectionFailed is returned when connection to qBittorrent fails.
	ErrConnectionFailed = errors.New("connection to qBittorrent failed")
)
