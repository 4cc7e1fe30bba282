// Package qbittorrent provides a client for interacting with the qBittorrent Web API.
//
// This package wraps the autobrr/go-qbittorrent library and exposes the three
// operations the queue reconciler needs: logging in, listing every torrent and
// toggling force-start.
//
// # Metadata detection
//
// The Web API torrent list does not carry a metadata flag in the library's
// model, so TorrentInfo.HasMetadata is derived from the torrent state and its
// total size. A magnet that is still queued reports a total size of zero.
//
// # Usage
//
//	client := qbittorrent.NewClient(host, username, password, logger)
//	if err := client.Login(ctx); err != nil {
//	    return err
//	}
//
//	torrents, err := client.GetAllTorrents(ctx)
//
//	err = client.SetForceStart(ctx, []string{hash}, true)
package qbittorrent
