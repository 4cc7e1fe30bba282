package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repositorySlug = "s0up4200/queuemeta"

var (
	appVersion   = "dev"
	appBuildTime = "unknown"

	checkUpdate bool
)

// SetVersion records build information for the version command
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = version
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information and check for updates",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&checkUpdate, "check", false, "check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "queuemeta %s (built %s)\n", appVersion, appBuildTime)

	if !checkUpdate {
		return nil
	}

	if _, err := semver.ParseTolerant(appVersion); err != nil {
		fmt.Fprintln(out, "Development build, skipping update check")
		return nil
	}

	latest, found, err := selfupdate.DetectLatest(cmd.Context(), selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		fmt.Fprintln(out, "No releases found")
		return nil
	}

	newer, err := isNewer(appVersion, latest.Version())
	if err != nil {
		return err
	}

	if newer {
		fmt.Fprintf(out, "A newer version is available: %s\n%s\n", latest.Version(), latest.URL)
		return nil
	}

	fmt.Fprintln(out, "You are running the latest version")
	return nil
}

// isNewer reports whether latest is a higher semver than current
func isNewer(current, latest string) (bool, error) {
	currentVersion, err := semver.ParseTolerant(current)
	if err != nil {
		return false, fmt.Errorf("invalid current version %q: %w", current, err)
	}

	latestVersion, err := semver.ParseTolerant(latest)
	if err != nil {
		return false, fmt.Errorf("invalid release version %q: %w", latest, err)
	}

	return latestVersion.GT(currentVersion), nil
}
