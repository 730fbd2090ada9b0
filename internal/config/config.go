package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/liao/chat-analyzer/internal/analytics"
)

type Config struct {
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
}

type AnalyzerConfig struct {
	CurrentUser         string `mapstructure:"current_user"`
	ShortReplyMaxWords  int    `mapstructure:"short_reply_max_words"`
	LongMessageMinWords int    `mapstructure:"long_message_min_words"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // text / json
	Color  string `mapstructure:"color"`  // auto / always / never
}

const envPrefix = "CHAT_ANALYZER"

func setDefaults(v *viper.Viper) {
	th := analytics.DefaultThresholds()
	v.SetDefault("analyzer.current_user", "")
	v.SetDefault("analyzer.short_reply_max_words", th.ShortReplyMaxWords)
	v.SetDefault("analyzer.long_message_min_words", th.LongMessageMinWords)
	v.SetDefault("log.level", "warn")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", "auto")
}

// Load 读取配置；path 为空时只用默认值和环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// 环境变量覆盖
	if user := os.Getenv(envPrefix + "_USER"); user != "" {
		v.Set("analyzer.current_user", user)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Analyzer.ShortReplyMaxWords < 1 {
		return fmt.Errorf("analyzer.short_reply_max_words must be at least 1")
	}
	if c.Analyzer.LongMessageMinWords <= c.Analyzer.ShortReplyMaxWords {
		return fmt.Errorf("analyzer.long_message_min_words must be greater than analyzer.short_reply_max_words")
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Thresholds 短回复 / 长消息阈值
func (c *Config) Thresholds() analytics.Thresholds {
	return analytics.Thresholds{
		ShortReplyMaxWords:  c.Analyzer.ShortReplyMaxWords,
		LongMessageMinWords: c.Analyzer.LongMessageMinWords,
	}
}

// LogLevel 解析 log.level
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
