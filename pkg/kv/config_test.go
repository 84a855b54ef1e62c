package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := &Config{NATSURL: "nats://127.0.0.1:4222"}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "hwinv", cfg.Bucket)
	assert.Equal(t, "chassis", cfg.Table)
	assert.Equal(t, uint32(1), cfg.BucketHistory)
}

func TestConfigValidate_MissingURL(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	assert.ErrorIs(t, err, errNatsURLRequired)
}

func TestConfigValidate_NegativeMaxBytes(t *testing.T) {
	cfg := &Config{NATSURL: "nats://127.0.0.1:4222", BucketMaxBytes: -1}

	require.NoError(t, cfg.Validate())
	assert.Zero(t, cfg.BucketMaxBytes)
}
