package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, 34.0, c.ActorSize())
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*Config){
		"tiny arena":      func(c *Config) { c.Cols = 4 },
		"zero tile":       func(c *Config) { c.TileSize = 0 },
		"fat actors":      func(c *Config) { c.ActorInset = c.TileSize },
		"fill":            func(c *Config) { c.Fill = 1.5 },
		"drop chance":     func(c *Config) { c.DropChance = -0.1 },
		"no lives":        func(c *Config) { c.PlayerLives = 0 },
		"capacity":        func(c *Config) { c.BombCapacity = 7 },
		"flame":           func(c *Config) { c.FlameRadius = 9 },
		"enemy health":    func(c *Config) { c.EnemyHealth = 0 },
		"turn interval":   func(c *Config) { c.EnemyTurnMax = c.EnemyTurnMin - time.Millisecond },
		"tunneling speed": func(c *Config) { c.PlayerSpeed = 40 },
		"broken level":    func(c *Config) { c.Level = "###\n#.#\n###" },
	}
	for name, tweak := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			tweak(&c)
			assert.ErrorIs(t, c.Validate(), ErrBadConfig)
		})
	}
}

func TestConfig_FixedLevelIgnoresSize(t *testing.T) {
	c := DefaultConfig()
	c.Cols, c.Rows = 0, 0
	c.Level = testLevel
	assert.NoError(t, c.Validate())
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("BOMBER_COLS", "31")
	t.Setenv("BOMBER_LIVES", "5")
	t.Setenv("BOMBER_SEED", "-7")
	t.Setenv("BOMBER_FUSE", "2s")
	c, err := DefaultConfig().FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 31, c.Cols)
	assert.Equal(t, 15, c.Rows)
	assert.Equal(t, 5, c.PlayerLives)
	assert.Equal(t, int64(-7), c.Seed)
	assert.Equal(t, 2*time.Second, c.Fuse)
}

func TestConfig_FromEnvRejectsGarbage(t *testing.T) {
	t.Setenv("BOMBER_ENEMIES", "many")
	_, err := DefaultConfig().FromEnv()
	assert.ErrorIs(t, err, ErrBadConfig)
	assert.Contains(t, err.Error(), "BOMBER_ENEMIES")
}

func TestLoadLevel(t *testing.T) {
	text, err := LoadLevel(strings.NewReader(testLevel))
	require.NoError(t, err)
	assert.Equal(t, testLevel, text)

	_, err = LoadLevel(strings.NewReader("#P#"))
	assert.Error(t, err)
}
