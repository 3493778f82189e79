package gmail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultQuery, cfg.Query)
	assert.Equal(t, int64(50), cfg.MaxResults)
}

func TestConfigNormalise(t *testing.T) {
	cfg := &Config{}
	cfg.normalise()
	assert.Equal(t, DefaultQuery, cfg.Query)
	assert.Equal(t, int64(50), cfg.MaxResults)

	cfg = &Config{Query: "subject:custom", MaxResults: 10}
	cfg.normalise()
	assert.Equal(t, "subject:custom", cfg.Query)
	assert.Equal(t, int64(10), cfg.MaxResults)
}
