package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "TOKEN_TTL", "TIMEZONE", "MONGO_DB", "SHIFT_OVERRUN_AFTER", "SEED_CATALOG"} {
		t.Setenv(k, "")
	}

	c := FromEnv()
	assert.Equal(t, "8888", c.AppPort)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, "Europe/Prague", c.Timezone)
	assert.Equal(t, "PlanujSmenyDB", c.MongoDB)
	assert.Equal(t, 12*time.Hour, c.ShiftOverrunAfter)
	assert.False(t, c.SeedCatalog)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("SHIFT_OVERRUN_AFTER", "not-a-duration")
	t.Setenv("SEED_CATALOG", "true")

	c := FromEnv()
	assert.Equal(t, "9000", c.AppPort)
	assert.Equal(t, 2*time.Hour, c.TokenTTL)
	assert.Equal(t, 12*time.Hour, c.ShiftOverrunAfter)
	assert.True(t, c.SeedCatalog)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	c := &Config{Timezone: "Nowhere/Atlantis"}
	assert.Equal(t, time.UTC, c.Location())
}
