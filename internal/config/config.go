package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat         string        `mapstructure:"log_format" yaml:"log_format"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	// SubscriberBuffer bounds each connection's outbound event queue;
	// events beyond it are dropped for that connection only.
	SubscriberBuffer int `mapstructure:"subscriber_buffer" yaml:"subscriber_buffer"`
	// MessageRateLimit caps chat messages per connection per minute.
	// Zero disables the limit.
	MessageRateLimit int `mapstructure:"message_rate_limit" yaml:"message_rate_limit"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		LogLevel:          "info",
		LogFormat:         "console",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		SubscriberBuffer:  16,
		MessageRateLimit:  0,
	}
}
