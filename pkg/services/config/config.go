package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/de-tools/instance-isolator/pkg/models/domain"
	"github.com/de-tools/instance-isolator/pkg/services/cloud/aws"
	"github.com/de-tools/instance-isolator/pkg/services/isolation"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	IsolationGroupID  string `mapstructure:"isolation_sg" validate:"required"`
	NotificationTopic string `mapstructure:"sns_topic" validate:"required"`
	TagKey            string `mapstructure:"tag_key"`
	TagValue          string `mapstructure:"tag_value"`
	AWSProfile        string `mapstructure:"aws_profile"`
	AWSRegion         string `mapstructure:"aws_region"`
	LogLevel          string `mapstructure:"log_level"`
}

// key -> environment variable
var bindings = []struct {
	key      string
	env      string
	required bool
}{
	{key: "isolation_sg", env: "ISOLATION_SG", required: true},
	{key: "sns_topic", env: "SNS_TOPIC", required: true},
	{key: "tag_key", env: "ISOLATION_TAG_KEY"},
	{key: "tag_value", env: "ISOLATION_TAG_VALUE"},
	{key: "aws_profile", env: "AWS_PROFILE"},
	{key: "aws_region", env: "AWS_REGION"},
	{key: "log_level", env: "LOG_LEVEL"},
}

// LoadConfig reads settings from the environment. When path is set the file
// is read first and environment variables override its values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("tag_key", domain.DefaultTagKey)
	v.SetDefault("tag_value", domain.DefaultTagValue)
	v.SetDefault("log_level", zerolog.InfoLevel.String())

	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b.env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse isolation config: %w", err)
	}

	var missing []string
	for _, b := range bindings {
		if b.required && strings.TrimSpace(v.GetString(b.key)) == "" {
			missing = append(missing, b.env)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	return &cfg, nil
}

func (c *Config) Isolation() isolation.Config {
	return isolation.Config{
		IsolationGroupID:      c.IsolationGroupID,
		NotificationChannelID: c.NotificationTopic,
		Tag:                   domain.IsolationTag{Key: c.TagKey, Value: c.TagValue},
	}
}

func (c *Config) AWS() aws.Settings {
	return aws.Settings{Profile: c.AWSProfile, Region: c.AWSRegion}
}

func (c *Config) NewLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
