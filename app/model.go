package app

import (
	"fmt"

	"github.com/zucenko/bomber/scores"
)

type AppState int

const (
	APP_MENU AppState = iota + 1
	APP_GAME
	APP_HIGH_SCORES
	APP_NAME_INPUT
	APP_QUIT
)

func (s AppState) Name() string {
	switch s {
	case APP_MENU:
		return "MENU"
	case APP_GAME:
		return "GAME"
	case APP_HIGH_SCORES:
		return "HIGH_SCORES"
	case APP_NAME_INPUT:
		return "NAME_INPUT"
	case APP_QUIT:
		return "QUIT"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

// Command is a host key press already mapped to its meaning.
type Command int

const (
	CMD_UP Command = iota + 1
	CMD_DOWN
	CMD_CONFIRM
	CMD_BACK
	CMD_PLANT
	CMD_RESTART
	CMD_ERASE
)

func (c Command) Name() string {
	switch c {
	case CMD_UP:
		return "UP"
	case CMD_DOWN:
		return "DOWN"
	case CMD_CONFIRM:
		return "CONFIRM"
	case CMD_BACK:
		return "BACK"
	case CMD_PLANT:
		return "PLANT"
	case CMD_RESTART:
		return "RESTART"
	case CMD_ERASE:
		return "ERASE"
	default:
		return fmt.Sprintf("n/a:%d", c)
	}
}

type MenuItem int

const (
	MENU_START MenuItem = iota
	MENU_SCORES
	MENU_QUIT
)

var MenuItems = []MenuItem{MENU_START, MENU_SCORES, MENU_QUIT}

func (m MenuItem) Key() string {
	switch m {
	case MENU_START:
		return "MENU_START"
	case MENU_SCORES:
		return "MENU_SCORES"
	case MENU_QUIT:
		return "MENU_QUIT"
	default:
		return fmt.Sprintf("n/a:%d", m)
	}
}

// Menu selection wraps around at both ends.
type Menu struct {
	Selected int
}

func (m *Menu) Up() {
	m.Selected = (m.Selected - 1 + len(MenuItems)) % len(MenuItems)
}

func (m *Menu) Down() {
	m.Selected = (m.Selected + 1) % len(MenuItems)
}

func (m *Menu) Item() MenuItem {
	return MenuItems[m.Selected]
}

// ScoreKeeper is the part of the score store the screens need.
type ScoreKeeper interface {
	Add(name string, score int) (bool, error)
	IsHighScore(score int) (bool, error)
	HighScores() ([]scores.Entry, error)
}
