package qbittorrent

import (
	"context"
	"fmt"

	"github.com/autobrr/go-qbittorrent"
	"github.com/rs/zerolog"
)

// API is the subset of the go-qbittorrent client used here
type API interface {
	LoginCtx(ctx context.Context) error
	GetWebAPIVersionCtx(ctx context.Context) (string, error)
	GetTorrentsCtx(ctx context.Context, o qbittorrent.TorrentFilterOptions) ([]qbittorrent.Torrent, error)
	SetForceStartCtx(ctx context.Context, hashes []string, value bool) error
}

// Client wraps the qBittorrent API client
type Client struct {
	client API
	logger zerolog.Logger
}

// NewClient creates a new qBittorrent client. It does not connect until Login is called.
func NewClient(host, username, password string, logger zerolog.Logger, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	client := qbittorrent.NewClient(qbittorrent.Config{
		Host:          host,
		Username:      username,
		Password:      password,
		TLSSkipVerify: !o.verifyCert,
	})

	return NewClientWithAPI(client, logger)
}

// NewClientWithAPI creates a Client around an existing API implementation
func NewClientWithAPI(api API, logger zerolog.Logger) *Client {
	return &Client{
		client: api,
		logger: logger,
	}
}

// Login authenticates against the Web UI and confirms the session with a request.
// The library skips the login request when no credentials are set, so the
// version request is what proves the host is reachable.
func (c *Client) Login(ctx context.Context) error {
	if err := c.client.LoginCtx(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	version, err := c.client.GetWebAPIVersionCtx(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	c.logger.Debug().Str("api_version", version).Msg("Successfully connected to qBittorrent")
	return nil
}

// GetAllTorrents retrieves all torrents from qBittorrent
func (c *Client) GetAllTorrents(ctx context.Context) ([]TorrentInfo, error) {
	torrents, err := c.client.GetTorrentsCtx(ctx, qbittorrent.TorrentFilterOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get torrents: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d torrents from qBittorrent", len(torrents))

	results := make([]TorrentInfo, 0, len(torrents))
	for _, t := range torrents {
		state := string(t.State)
		results = append(results, TorrentInfo{
			Hash:        t.Hash,
			Name:        t.Name,
			State:       state,
			ForceStart:  t.ForceStart,
			HasMetadata: hasMetadata(state, t.TotalSize),
			TotalSize:   t.TotalSize,
		})
	}

	return results, nil
}

// SetForceStart enables or disables force-start for the given torrents
func (c *Client) SetForceStart(ctx context.Context, hashes []string, enable bool) error {
	if len(hashes) == 0 {
		return ErrInvalidHash
	}

	if err := c.client.SetForceStartCtx(ctx, hashes, enable); err != nil {
		return fmt.Errorf("failed to set force start to %t: %w", enable, err)
	}

	return nil
}
