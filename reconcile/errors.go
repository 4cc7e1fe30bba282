package reconcile

import "errors"

// ErrFetchTorrents is returned when a pass cannot list torrents. The pass is skipped.
var ErrFetchTorrents = errors.New("failed to fetch torrents")
