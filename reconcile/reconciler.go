package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-units"
	"github.com/rs/zerolog"

	"github.com/s0up4200/queuemeta/qbittorrent"
)

// TorrentAPI is what the reconciler needs from the torrent client
type TorrentAPI interface {
	GetAllTorrents(ctx context.Context) ([]qbittorrent.TorrentInfo, error)
	SetForceStart(ctx context.Context, hashes []string, enable bool) error
}

// Result summarises one pass
type Result struct {
	Checked  int
	Enabled  int
	Disabled int
	Failed   int
}

// Reconciler keeps force-start reserved for torrents that are missing metadata
type Reconciler struct {
	client TorrentAPI
	logger zerolog.Logger
}

// New creates a Reconciler
func New(client TorrentAPI, logger zerolog.Logger) *Reconciler {
	return &Reconciler{
		client: client,
		logger: logger,
	}
}

// RunOnce fetches a fresh snapshot and applies the decision table to every torrent.
// Only a failed fetch is returned as an error; per-torrent failures are logged and counted.
func (r *Reconciler) RunOnce(ctx context.Context) (Result, error) {
	var result Result

	torrents, err := r.client.GetAllTorrents(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrFetchTorrents, err)
	}

	for _, torrent := range torrents {
		result.Checked++

		action := Decide(torrent.HasMetadata, torrent.ForceStart)
		if action == ActionNone {
			continue
		}

		if err := r.apply(ctx, torrent, action); err != nil {
			result.Failed++
			continue
		}

		switch action {
		case ActionEnableForceStart:
			result.Enabled++
		case ActionDisableForceStart:
			result.Disabled++
		}
	}

	r.logger.Debug().
		Int("checked", result.Checked).
		Int("enabled", result.Enabled).
		Int("disabled", result.Disabled).
		Int("failed", result.Failed).
		Msg("Reconciliation pass complete")

	return result, nil
}

func (r *Reconciler) apply(ctx context.Context, torrent qbittorrent.TorrentInfo, action Action) error {
	enable := action == ActionEnableForceStart

	if err := r.client.SetForceStart(ctx, []string{torrent.Hash}, enable); err != nil {
		msg := "Failed to disable force start for torrent"
		if enable {
			msg = "Failed to force start torrent"
		}
		r.logger.Error().Err(err).
			Str("name", torrent.Name).
			Str("hash", torrent.Hash).
			Msg(msg)
		return err
	}

	if enable {
		r.logger.Info().
			Str("name", torrent.Name).
			Str("hash", torrent.Hash).
			Msg("Force-started torrent for metadata retrieval")
		return nil
	}

	r.logger.Info().
		Str("name", torrent.Name).
		Str("hash", torrent.Hash).
		Str("size", units.HumanSize(float64(torrent.TotalSize))).
		Msg("Disabled force-start for torrent; metadata retrieved")
	return nil
}

// Run executes passes until ctx is cancelled, sleeping a constant interval between them.
// With once set it performs a single pass and returns.
func (r *Reconciler) Run(ctx context.Context, interval time.Duration, once bool) error {
	for {
		if _, err := r.RunOnce(ctx); err != nil {
			r.logger.Error().Err(err).Msg("Error fetching torrents")
		}

		if once {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		r.logger.Debug().Dur("interval", interval).Msg("Sleeping until next pass")

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
