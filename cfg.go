package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/bomber/session"
)

var (
	levelPath  = flag.String("level", "", "level layout file")
	scoresPath = flag.String("scores", "scores.db", "high score database")
	seed       = flag.Int64("seed", 0, "arena seed, 0 picks one from the clock")
	verbose    = flag.Bool("v", false, "debug logging")
)

// Load reads a level layout the way assets are read, so it works from a bundle too.
func Load(path string) (string, error) {
	file, err := ebitenutil.OpenFile(path)
	if err != nil {
		log.Errorf("failed opening level %s: %v", path, err)
		return "", err
	}
	defer file.Close()
	return session.LoadLevel(file)
}

func config() session.Config {
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	cfg, err := session.DefaultConfig().FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	} else if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if *levelPath != "" {
		if cfg.Level, err = Load(*levelPath); err != nil {
			log.Fatalf("level %s: %v", *levelPath, err)
		}
	}
	return cfg
}
