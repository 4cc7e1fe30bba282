package config

import "time"

// Default values used when neither the config file nor the command line sets a value.
const (
	DefaultInterval          = 60
	DefaultVerifyCertificate = true
)

// Settings is the effective configuration after all tiers have been merged
type Settings struct {
	Host              string
	Username          string
	Password          string
	Interval          int
	Once              bool
	Verbose           bool
	VerifyCertificate bool
}

// PollInterval returns the interval as a time.Duration
func (s Settings) PollInterval() time.Duration {
	return time.Duration(s.Interval) * time.Second
}

// Layer is one source of settings. A nil field means the source did not set it.
type Layer struct {
	Host              *string `mapstructure:"host"`
	Username          *string `mapstructure:"username"`
	Password          *string `mapstructure:"password"`
	Interval          *int    `mapstructure:"interval"`
	Once              *bool   `mapstructure:"once"`
	Verbose           *bool   `mapstructure:"verbose"`
	VerifyCertificate *bool   `mapstructure:"verify_certificate"`
}

// IsEmpty reports whether the layer sets nothing
func (l Layer) IsEmpty() bool {
	return l == Layer{}
}

func (l Layer) applyTo(s *Settings) {
	if l.Host != nil {
		s.Host = *l.Host
	}
	if l.Username != nil {
		s.Username = *l.Username
	}
	if l.Password != nil {
		s.Password = *l.Password
	}
	if l.Interval != nil {
		s.Interval = *l.Interval
	}
	if l.Once != nil {
		s.Once = *l.Once
	}
	if l.Verbose != nil {
		s.Verbose = *l.Verbose
	}
	if l.VerifyCertificate != nil {
		s.VerifyCertificate = *l.VerifyCertificate
	}
}
