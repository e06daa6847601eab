package app

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/bomber/scores"
	"github.com/zucenko/bomber/session"
)

// App is the screen flow around one GameSession. Hosts feed it mapped commands, typed
// runes and per-frame input, and draw what it exposes. Keeper may be nil, which turns
// the score screens off.
type App struct {
	State   AppState
	Menu    Menu
	Name    NameEntry
	Session *session.GameSession
	// Outcome is the last result returned by the session.
	Outcome session.Outcome
	// Notice is a message key shown on the next screen, empty when there is none.
	Notice string

	keeper ScoreKeeper
	text   Catalog
	table  []scores.Entry
}

func New(gs *session.GameSession, keeper ScoreKeeper) *App {
	return &App{
		State:   APP_MENU,
		Session: gs,
		keeper:  keeper,
		text:    loadStrings(),
	}
}

// T looks up a display string. Keys holding verbs come back unexpanded, ready for
// fmt.Sprintf.
func (a *App) T(key string) string {
	return a.text.Text(key)
}

func (a *App) setState(s AppState) {
	log.Debugf("app %s -> %s", a.State.Name(), s.Name())
	a.State = s
}

// Update advances the running game by one tick. Outside the game screen, and once the
// game has ended, it does nothing.
func (a *App) Update(in session.Input) session.Outcome {
	if a.State != APP_GAME || a.Session.State().Terminal() {
		return a.Outcome
	}
	a.Outcome = a.Session.Tick(in)
	if a.Outcome.Kind != session.OUTCOME_CONTINUE {
		log.Infof("game finished: %s score:%d", a.Outcome.Kind.Name(), a.Outcome.Score)
	}
	return a.Outcome
}

// Type forwards a printable key to the name prompt.
func (a *App) Type(r rune) {
	if a.State == APP_NAME_INPUT && a.Name.Type(r) {
		a.Notice = ""
	}
}

func (a *App) Command(c Command) {
	switch a.State {
	case APP_MENU:
		a.menuCommand(c)
	case APP_GAME:
		a.gameCommand(c)
	case APP_HIGH_SCORES:
		if c == CMD_BACK || c == CMD_CONFIRM {
			a.toMenu()
		}
	case APP_NAME_INPUT:
		a.nameCommand(c)
	}
}

func (a *App) menuCommand(c Command) {
	switch c {
	case CMD_UP:
		a.Menu.Up()
	case CMD_DOWN:
		a.Menu.Down()
	case CMD_BACK:
		a.setState(APP_QUIT)
	case CMD_CONFIRM:
		a.Notice = ""
		switch a.Menu.Item() {
		case MENU_START:
			a.startGame()
		case MENU_SCORES:
			a.openScores()
		case MENU_QUIT:
			a.setState(APP_QUIT)
		}
	}
}

func (a *App) startGame() {
	a.Session.Restart()
	a.Outcome = session.Outcome{Kind: session.OUTCOME_CONTINUE}
	a.setState(APP_GAME)
}

func (a *App) gameCommand(c Command) {
	finished := a.Session.State().Terminal()
	switch c {
	case CMD_BACK:
		a.toMenu()
	case CMD_PLANT:
		if r := a.Session.Plant(); !r.Ok() {
			log.Debugf("plant rejected: %s", r.Name())
		}
	case CMD_RESTART:
		if finished {
			a.startGame()
		}
	case CMD_CONFIRM:
		if finished {
			a.finish()
		}
	}
}

// finish leaves a finished game for the name prompt when the score qualifies, for the
// menu otherwise.
func (a *App) finish() {
	if a.keeper == nil {
		a.toMenu()
		return
	}
	ok, err := a.keeper.IsHighScore(a.Outcome.Score)
	if err != nil {
		log.Warnf("high score check: %v", err)
		a.toMenu()
		a.Notice = "SCORES_UNAVAILABLE"
		return
	}
	if !ok {
		a.toMenu()
		return
	}
	a.Name.Reset()
	a.setState(APP_NAME_INPUT)
}

func (a *App) nameCommand(c Command) {
	switch c {
	case CMD_ERASE:
		a.Name.Erase()
	case CMD_BACK:
		a.toMenu()
	case CMD_CONFIRM:
		name := strings.TrimSpace(a.Name.String())
		_, err := a.keeper.Add(name, a.Outcome.Score)
		switch {
		case errors.Is(err, scores.ErrBlankName):
			a.Notice = "NAME_BLANK"
		case err != nil:
			log.Warnf("saving score: %v", err)
			a.toMenu()
			a.Notice = "SCORES_UNAVAILABLE"
		default:
			a.openScores()
		}
	}
}

func (a *App) openScores() {
	a.table = nil
	if a.keeper == nil {
		a.Notice = "SCORES_UNAVAILABLE"
		return
	}
	table, err := a.keeper.HighScores()
	if err != nil {
		log.Warnf("loading scores: %v", err)
		a.Notice = "SCORES_UNAVAILABLE"
		return
	}
	a.table = table
	a.setState(APP_HIGH_SCORES)
}

func (a *App) toMenu() {
	a.Notice = ""
	a.Name.Reset()
	a.setState(APP_MENU)
}

// Lines is the text a host shows over, or instead of, the arena for the current screen.
func (a *App) Lines() []string {
	lines := []string{}
	switch a.State {
	case APP_MENU:
		lines = append(lines, a.T("TITLE"), "")
		for i, item := range MenuItems {
			prefix := "  "
			if i == a.Menu.Selected {
				prefix = "> "
			}
			lines = append(lines, prefix+a.T(item.Key()))
		}
	case APP_HIGH_SCORES:
		lines = append(lines, a.T("HIGH_SCORES"), "")
		if len(a.table) == 0 {
			lines = append(lines, a.T("NO_SCORES"))
		}
		for i, e := range a.table {
			lines = append(lines, fmt.Sprintf(a.T("SCORE_LINE"), i+1, e.Name, e.Score))
		}
		lines = append(lines, "", a.T("BACK_HINT"))
	case APP_NAME_INPUT:
		lines = append(lines,
			fmt.Sprintf(a.T("NEW_HIGH_SCORE"), a.Outcome.Score),
			fmt.Sprintf(a.T("NAME_PROMPT"), a.Name.String()),
			"",
			a.T("NAME_HINT"))
	case APP_GAME:
		switch a.Outcome.Kind {
		case session.OUTCOME_GAME_OVER:
			lines = append(lines, a.T("GAME_OVER"), a.T("RESULT_HINT"))
		case session.OUTCOME_VICTORY:
			lines = append(lines, a.T("VICTORY"), a.T("RESULT_HINT"))
		}
	}
	if a.Notice != "" {
		lines = append(lines, "", a.T(a.Notice))
	}
	return lines
}

// Hud is the one-line status for a running game.
func (a *App) Hud(v session.View) string {
	return fmt.Sprintf(a.T("HUD"), v.Score, v.Level, v.Lives, v.BombsInUse, v.BombCapacity, v.FlameRadius)
}
