package qbittorrent

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	verifyCert bool
}

func defaultOptions() clientOptions {
	return clientOptions{
		verifyCert: true,
	}
}

// WithInsecureSkipVerify disables certificate verification.
// Use with caution and only for self-signed Web UI certificates.
func WithInsecureSkipVerify() Option {
	return func(o *clientOptions) {
		o.verifyCert = false
	}
}
