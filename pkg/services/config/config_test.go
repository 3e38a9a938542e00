package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvironment(t *testing.T) {
	// Given
	t.Setenv("ISOLATION_SG", "sg-0123")
	t.Setenv("SNS_TOPIC", "arn:aws:sns:us-east-1:123456789012:incidents")
	t.Setenv("AWS_REGION", "eu-central-1")
	t.Setenv("ISOLATION_TAG_KEY", "")
	t.Setenv("ISOLATION_TAG_VALUE", "")
	t.Setenv("LOG_LEVEL", "")

	// When
	cfg, err := LoadConfig("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "sg-0123", cfg.IsolationGroupID)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:incidents", cfg.NotificationTopic)
	assert.Equal(t, "Incident", cfg.TagKey)
	assert.Equal(t, "Auto-Isolated", cfg.TagValue)
	assert.Equal(t, "eu-central-1", cfg.AWS().Region)
	assert.Equal(t, "info", cfg.LogLevel)

	iso := cfg.Isolation()
	assert.Equal(t, "sg-0123", iso.IsolationGroupID)
	assert.Equal(t, cfg.NotificationTopic, iso.NotificationChannelID)
	assert.Equal(t, "Incident", iso.Tag.Key)
}

func TestLoadConfig_MissingRequired_NamesEveryKey(t *testing.T) {
	// Given
	t.Setenv("ISOLATION_SG", "")
	t.Setenv("SNS_TOPIC", "")

	// When
	_, err := LoadConfig("")

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ISOLATION_SG")
	assert.Contains(t, err.Error(), "SNS_TOPIC")
}

func TestLoadConfig_FileWithEnvOverride(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "isolator.yaml")
	content := `isolation_sg: "sg-from-file"
sns_topic: "arn:aws:sns:us-east-1:123456789012:file"
tag_key: "SecurityStatus"
tag_value: "Quarantined"
log_level: "debug"`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("ISOLATION_SG", "sg-from-env")
	t.Setenv("SNS_TOPIC", "")
	t.Setenv("ISOLATION_TAG_KEY", "")
	t.Setenv("ISOLATION_TAG_VALUE", "")
	t.Setenv("LOG_LEVEL", "")

	// When
	cfg, err := LoadConfig(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "sg-from-env", cfg.IsolationGroupID)
	assert.Equal(t, "SecurityStatus", cfg.TagKey)
	assert.Equal(t, "Quarantined", cfg.TagValue)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_BadFile_ReturnsError(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorContains(t, err, "failed to read config file")
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}
	var buf bytes.Buffer

	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = (&Config{LogLevel: "loud"}).NewLogger(&buf)
	assert.Error(t, err)
}
