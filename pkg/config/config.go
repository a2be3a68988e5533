package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix("BENCHANNOTATE")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Missing config file is fine, defaults and env vars apply
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func setDefaults() {
	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Minute) // downloads block the request
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1<<20)

	// Database (video catalog metadata)
	viper.SetDefault("database.path", "./data/benchannotate.db")
	viper.SetDefault("database.log_queries", false)

	// Storage roots
	viper.SetDefault("storage.video_dir", "./static/videos")
	viper.SetDefault("storage.ledger_dir", "./static/annotations")

	// External tools
	viper.SetDefault("tools.ytdlp_path", "yt-dlp")
	viper.SetDefault("tools.ffmpeg_path", "ffmpeg")
	viper.SetDefault("tools.ffprobe_path", "ffprobe")
	viper.SetDefault("tools.download_timeout", 10*time.Minute)
	viper.SetDefault("tools.detect_timeout", 5*time.Minute)
	viper.SetDefault("tools.scene_threshold", 0.3)
	viper.SetDefault("tools.max_height", 480)

	// Security
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.max_request_size", int64(1<<20))
	viper.SetDefault("security.rate_limit_rps", 2)
	viper.SetDefault("security.rate_limit_burst", 5)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("storage.video_dir") == "" {
		return fmt.Errorf("storage.video_dir must not be empty")
	}
	if viper.GetString("storage.ledger_dir") == "" {
		return fmt.Errorf("storage.ledger_dir must not be empty")
	}

	threshold := viper.GetFloat64("tools.scene_threshold")
	if threshold <= 0 || threshold >= 1 {
		return fmt.Errorf("tools.scene_threshold must be in (0, 1), got %f", threshold)
	}

	// Auto-correct invalid rate limit settings
	if viper.GetInt("security.rate_limit_rps") <= 0 {
		viper.Set("security.rate_limit_rps", 2)
	}
	if viper.GetInt("security.rate_limit_burst") <= 0 {
		viper.Set("security.rate_limit_burst", 5)
	}

	return nil
}
