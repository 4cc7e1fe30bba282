package config

import "errors"

var (
	// ErrHostRequired is returned when no host is set by the config file or the command line.
	ErrHostRequired = errors.New("qBittorrent host must be provided via --host or in the config file")

	// ErrInvalidInterval is returned when the poll interval is not a positive number of seconds.
	ErrInvalidInterval = errors.New("interval must be a positive number of seconds")
)
