package session

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/bomber/model"
)

var ErrBadConfig = errors.New("bad config")

type Config struct {
	Cols, Rows int
	TileSize   float64
	// ActorInset is how much smaller than a tile every actor body is.
	ActorInset float64
	// Fill is the chance an interior floor cell starts as a destructible wall.
	Fill float64

	PlayerSpeed     float64
	PlayerLives     int
	Invulnerability time.Duration

	EnemyCount   int
	EnemySpeed   float64
	EnemyHealth  int
	EnemyTurnMin time.Duration
	EnemyTurnMax time.Duration

	Fuse          time.Duration
	Cooldown      time.Duration
	BombCapacity  int
	FlameRadius   int
	BlastDuration time.Duration

	EnemyScore      int
	WallScore       int
	CompletionBonus int

	DropChance  float64
	SpeedDelta  float64
	MaxSpeed    float64
	MaxCapacity int
	MaxFlame    int

	Seed int64
	// Level is an optional fixed layout in model.ReadArena format; empty means generated.
	Level string
}

func DefaultConfig() Config {
	return Config{
		Cols:       20,
		Rows:       15,
		TileSize:   40,
		ActorInset: 6,
		Fill:       0.3,

		PlayerSpeed:     3.0,
		PlayerLives:     3,
		Invulnerability: 1250 * time.Millisecond,

		EnemyCount:   5,
		EnemySpeed:   1.5,
		EnemyHealth:  1,
		EnemyTurnMin: 1000 * time.Millisecond,
		EnemyTurnMax: 2500 * time.Millisecond,

		Fuse:          3 * time.Second,
		Cooldown:      500 * time.Millisecond,
		BombCapacity:  1,
		FlameRadius:   2,
		BlastDuration: 500 * time.Millisecond,

		EnemyScore:      100,
		WallScore:       50,
		CompletionBonus: 500,

		DropChance:  0.25,
		SpeedDelta:  0.5,
		MaxSpeed:    5.0,
		MaxCapacity: 6,
		MaxFlame:    8,
	}
}

func (c Config) Limits() model.Limits {
	return model.Limits{
		MaxCapacity: c.MaxCapacity,
		MaxFlame:    c.MaxFlame,
		SpeedDelta:  c.SpeedDelta,
		MaxSpeed:    c.MaxSpeed,
	}
}

func (c Config) ActorSize() float64 {
	return c.TileSize - c.ActorInset
}

func (c Config) Validate() error {
	switch {
	case c.Level == "" && (c.Cols < 5 || c.Rows < 5):
		return fmt.Errorf("%w: arena %dx%d is smaller than 5x5", ErrBadConfig, c.Cols, c.Rows)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %v", ErrBadConfig, c.TileSize)
	case c.ActorInset <= 0 || c.ActorInset >= c.TileSize:
		return fmt.Errorf("%w: actor inset %v must be inside (0,%v)", ErrBadConfig, c.ActorInset, c.TileSize)
	case c.Fill < 0 || c.Fill > 1:
		return fmt.Errorf("%w: fill %v", ErrBadConfig, c.Fill)
	case c.DropChance < 0 || c.DropChance > 1:
		return fmt.Errorf("%w: drop chance %v", ErrBadConfig, c.DropChance)
	case c.PlayerLives < 1:
		return fmt.Errorf("%w: player lives %d", ErrBadConfig, c.PlayerLives)
	case c.BombCapacity < 1 || c.BombCapacity > c.MaxCapacity:
		return fmt.Errorf("%w: bomb capacity %d (max %d)", ErrBadConfig, c.BombCapacity, c.MaxCapacity)
	case c.FlameRadius < 0 || c.FlameRadius > c.MaxFlame:
		return fmt.Errorf("%w: flame radius %d (max %d)", ErrBadConfig, c.FlameRadius, c.MaxFlame)
	case c.EnemyCount < 0 || c.EnemyHealth < 1:
		return fmt.Errorf("%w: enemies %d with health %d", ErrBadConfig, c.EnemyCount, c.EnemyHealth)
	case c.EnemyTurnMin <= 0 || c.EnemyTurnMax < c.EnemyTurnMin:
		return fmt.Errorf("%w: enemy turn interval [%v,%v]", ErrBadConfig, c.EnemyTurnMin, c.EnemyTurnMax)
	case c.PlayerSpeed >= c.TileSize || c.EnemySpeed >= c.TileSize || c.MaxSpeed >= c.TileSize:
		return fmt.Errorf("%w: speeds must stay below one tile per tick", ErrBadConfig)
	}
	if c.Level != "" {
		if _, err := model.ReadArena(strings.NewReader(c.Level), c.TileSize); err != nil {
			return fmt.Errorf("%w: level: %v", ErrBadConfig, err)
		}
	}
	return nil
}

// LoadLevel reads and validates a layout, returning its text for Config.Level.
func LoadLevel(reader io.Reader) (string, error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if _, err := model.ReadArena(strings.NewReader(string(data)), DefaultConfig().TileSize); err != nil {
		return "", err
	}
	return string(data), nil
}

// FromEnv overrides fields from BOMBER_* variables. Unparsable values are errors.
func (c Config) FromEnv() (Config, error) {
	ints := map[string]*int{
		"BOMBER_COLS":     &c.Cols,
		"BOMBER_ROWS":     &c.Rows,
		"BOMBER_LIVES":    &c.PlayerLives,
		"BOMBER_ENEMIES":  &c.EnemyCount,
		"BOMBER_CAPACITY": &c.BombCapacity,
		"BOMBER_FLAME":    &c.FlameRadius,
	}
	for name, dst := range ints {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrBadConfig, name, v, err)
		}
		*dst = n
	}
	if v := os.Getenv("BOMBER_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: BOMBER_SEED=%q: %v", ErrBadConfig, v, err)
		}
		c.Seed = n
	}
	if v := os.Getenv("BOMBER_FUSE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("%w: BOMBER_FUSE=%q: %v", ErrBadConfig, v, err)
		}
		c.Fuse = d
	}
	log.Debugf("config after env: %+v", c)
	return c, nil
}
