package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the server.
type Config struct {
	ServerAddr     string
	DownloadsDir   string
	ArtifactMaxAge time.Duration
	SweepInterval  time.Duration
	JobTTL         time.Duration
	LogLevel       string
}

// Load reads environment variables and returns normalized runtime
// config. Plain PORT is honored alongside the prefixed CLIPD_PORT.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("clipd")
	v.AutomaticEnv()
	_ = v.BindEnv("port", "CLIPD_PORT", "PORT")

	v.SetDefault("port", "3000")
	v.SetDefault("downloads_dir", "./downloads")
	v.SetDefault("artifact_max_age", time.Hour)
	v.SetDefault("sweep_interval", time.Hour)
	v.SetDefault("job_ttl", 10*time.Minute)
	v.SetDefault("log_level", "info")

	return Config{
		ServerAddr:     ":" + v.GetString("port"),
		DownloadsDir:   v.GetString("downloads_dir"),
		ArtifactMaxAge: v.GetDuration("artifact_max_age"),
		SweepInterval:  v.GetDuration("sweep_interval"),
		JobTTL:         v.GetDuration("job_ttl"),
		LogLevel:       v.GetString("log_level"),
	}
}
