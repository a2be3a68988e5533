package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Tools    ToolsConfig    `mapstructure:"tools"`
	Security SecurityConfig `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains sqlite settings for the video catalog
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
}

// StorageConfig contains the media and ledger root directories.
// Components receive these at construction; nothing reads them ambiently.
type StorageConfig struct {
	VideoDir  string `mapstructure:"video_dir"`
	LedgerDir string `mapstructure:"ledger_dir"`
}

// ToolsConfig contains external tool paths and settings
type ToolsConfig struct {
	YtdlpPath       string        `mapstructure:"ytdlp_path"`
	FFmpegPath      string        `mapstructure:"ffmpeg_path"`
	FFprobePath     string        `mapstructure:"ffprobe_path"`
	DownloadTimeout time.Duration `mapstructure:"download_timeout"`
	DetectTimeout   time.Duration `mapstructure:"detect_timeout"`
	SceneThreshold  float64       `mapstructure:"scene_threshold"`
	MaxHeight       int           `mapstructure:"max_height"`
}

// SecurityConfig contains middleware settings
type SecurityConfig struct {
	EnableCORS     bool  `mapstructure:"enable_cors"`
	MaxRequestSize int64 `mapstructure:"max_request_size"`
	RateLimitRPS   int   `mapstructure:"rate_limit_rps"`
	RateLimitBurst int   `mapstructure:"rate_limit_burst"`
}
