package qbittorrent

import "github.com/autobrr/go-qbittorrent"

// States reported while a torrent is still downloading its metadata.
// go-qbittorrent has no constant for the forced variant.
const (
	stateMetaDL       = string(qbittorrent.TorrentStateMetaDl)
	stateForcedMetaDL = "forcedMetaDL"
)

// TorrentInfo is a point-in-time view of one torrent
type TorrentInfo struct {
	Hash        string
	Name        string
	State       string
	ForceStart  bool
	HasMetadata bool
	TotalSize   int64
}

// IsFetchingMetadata checks if the torrent is in one of the metadata download states
func (t *TorrentInfo) IsFetchingMetadata() bool {
	return t.State == stateMetaDL || t.State == stateForcedMetaDL
}

// hasMetadata derives metadata presence. qBittorrent reports a total size of
// zero until the piece layout is known, including for queued magnets that
// never entered metaDL.
func hasMetadata(state string, totalSize int64) bool {
	if state == stateMetaDL || state == stateForcedMetaDL {
		return false
	}
	return totalSize > 0
}
