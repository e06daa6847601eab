package app

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/bomber/scores"
	"github.com/zucenko/bomber/session"
)

var _ ScoreKeeper = (*scores.Store)(nil)

type fakeKeeper struct {
	high    bool
	err     error
	entries []scores.Entry
}

func (k *fakeKeeper) Add(name string, score int) (bool, error) {
	if k.err != nil {
		return false, k.err
	}
	if strings.TrimSpace(name) == "" {
		return false, scores.ErrBlankName
	}
	k.entries = append(k.entries, scores.Entry{Name: name, Score: score})
	return true, nil
}

func (k *fakeKeeper) IsHighScore(int) (bool, error) {
	return k.high, k.err
}

func (k *fakeKeeper) HighScores() ([]scores.Entry, error) {
	return k.entries, k.err
}

// Nothing to fight: the first tick wins.
var emptyLevel = "#####\n#P..#\n#.#.#\n#...#\n#####"

var guardedLevel = "#####\n#P..#\n#.#.#\n#..E#\n#####"

func newApp(t *testing.T, level string, keeper ScoreKeeper) *App {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.Level = level
	cfg.EnemyCount = 0
	if strings.Contains(level, "E") {
		cfg.EnemyCount = 1
	}
	cfg.EnemySpeed = 0
	gs, err := session.NewGameSession(cfg, session.NewManualClock(time.Unix(0, 0)))
	require.NoError(t, err)
	return New(gs, keeper)
}

func play(a *App) {
	a.Command(CMD_CONFIRM)
	a.Update(session.Input{})
}

func TestMenu_Wraps(t *testing.T) {
	m := Menu{}
	m.Up()
	assert.Equal(t, MENU_QUIT, m.Item())
	m.Down()
	assert.Equal(t, MENU_START, m.Item())
	m.Down()
	m.Down()
	m.Down()
	assert.Equal(t, MENU_START, m.Item())
}

func TestApp_MenuLines(t *testing.T) {
	a := newApp(t, emptyLevel, &fakeKeeper{})
	a.Command(CMD_DOWN)
	lines := a.Lines()
	assert.Equal(t, "BOMBER", lines[0])
	assert.Contains(t, lines, "> High Scores")
	assert.Contains(t, lines, "  Start Game")
}

func TestApp_Quit(t *testing.T) {
	a := newApp(t, emptyLevel, &fakeKeeper{})
	a.Command(CMD_BACK)
	assert.Equal(t, APP_QUIT, a.State)

	a = newApp(t, emptyLevel, &fakeKeeper{})
	a.Command(CMD_UP)
	a.Command(CMD_CONFIRM)
	assert.Equal(t, APP_QUIT, a.State)
}

func TestApp_HighScoreFlow(t *testing.T) {
	keeper := &fakeKeeper{high: true}
	a := newApp(t, emptyLevel, keeper)
	play(a)
	require.Equal(t, APP_GAME, a.State)
	require.Equal(t, session.OUTCOME_VICTORY, a.Outcome.Kind)
	assert.Equal(t, []string{"VICTORY!", "Enter: continue   R: play again"}, a.Lines())

	score := a.Outcome.Score
	a.Update(session.Input{Right: true})
	assert.Equal(t, score, a.Outcome.Score)

	a.Command(CMD_CONFIRM)
	require.Equal(t, APP_NAME_INPUT, a.State)
	a.Command(CMD_CONFIRM)
	assert.Equal(t, APP_NAME_INPUT, a.State)
	assert.Equal(t, "NAME_BLANK", a.Notice)

	for _, r := range "Ann!" {
		a.Type(r)
	}
	assert.Empty(t, a.Notice)
	assert.Equal(t, "Ann", a.Name.String())
	a.Command(CMD_CONFIRM)
	assert.Equal(t, APP_HIGH_SCORES, a.State)
	require.Len(t, keeper.entries, 1)
	assert.Equal(t, scores.Entry{Name: "Ann", Score: score}, keeper.entries[0])
	assert.Contains(t, a.Lines()[2], "Ann")

	a.Command(CMD_BACK)
	assert.Equal(t, APP_MENU, a.State)
}

func TestApp_LowScoreGoesToMenu(t *testing.T) {
	a := newApp(t, emptyLevel, &fakeKeeper{high: false})
	play(a)
	a.Command(CMD_CONFIRM)
	assert.Equal(t, APP_MENU, a.State)
}

func TestApp_NoKeeper(t *testing.T) {
	a := newApp(t, emptyLevel, nil)
	play(a)
	a.Command(CMD_CONFIRM)
	assert.Equal(t, APP_MENU, a.State)
	a.Command(CMD_DOWN)
	a.Command(CMD_CONFIRM)
	assert.Equal(t, APP_MENU, a.State)
	assert.Equal(t, "SCORES_UNAVAILABLE", a.Notice)
}

func TestApp_KeeperFailure(t *testing.T) {
	a := newApp(t, emptyLevel, &fakeKeeper{err: errors.New("disk gone")})
	play(a)
	a.Command(CMD_CONFIRM)
	assert.Equal(t, APP_MENU, a.State)
	assert.Equal(t, "Scores unavailable", a.Lines()[len(a.Lines())-1])
}

func TestApp_RestartOnlyWhenFinished(t *testing.T) {
	a := newApp(t, guardedLevel, &fakeKeeper{})
	play(a)
	require.Equal(t, session.OUTCOME_CONTINUE, a.Outcome.Kind)
	require.Equal(t, session.PLANT_OK, a.Session.Plant())
	a.Command(CMD_RESTART)
	assert.Equal(t, 1, a.Session.View().BombsInUse, "restart honoured mid-game")

	b := newApp(t, emptyLevel, &fakeKeeper{})
	play(b)
	require.Equal(t, session.GS_VICTORY, b.Session.State())
	b.Command(CMD_RESTART)
	assert.Equal(t, APP_GAME, b.State)
	assert.Equal(t, session.GS_PLAY, b.Session.State())
	assert.Equal(t, 0, b.Session.Score())
}

func TestApp_BackLeavesGame(t *testing.T) {
	a := newApp(t, guardedLevel, &fakeKeeper{})
	play(a)
	a.Command(CMD_BACK)
	assert.Equal(t, APP_MENU, a.State)
	out := a.Update(session.Input{Left: true})
	assert.Equal(t, session.OUTCOME_CONTINUE, out.Kind)
}

func TestNameEntry(t *testing.T) {
	n := NameEntry{}
	assert.False(t, n.Type('-'))
	assert.False(t, n.Type('\n'))
	assert.True(t, n.Type(' '))
	assert.True(t, n.Type('é'))
	assert.True(t, n.Type('7'))
	for i := 0; i < 30; i++ {
		n.Type('x')
	}
	assert.Len(t, []rune(n.String()), MaxNameLength)
	n.Erase()
	assert.Len(t, []rune(n.String()), MaxNameLength-1)
	n.Reset()
	n.Erase()
	assert.Equal(t, "", n.String())
}

func TestCatalog_Text(t *testing.T) {
	c := loadStrings()
	assert.Equal(t, "BOMBER", c.Text("TITLE"))
	assert.Equal(t, "%2d. %-20s %6d", c.Text("SCORE_LINE"))
	assert.Equal(t, "MISSING", c.Text("MISSING"))
}

func TestApp_FormattedLines(t *testing.T) {
	keeper := &fakeKeeper{high: true, entries: []scores.Entry{{Name: "Bo", Score: 1200}}}
	a := newApp(t, emptyLevel, keeper)
	hud := a.Hud(session.View{Score: 40, Level: 2, Lives: 3, BombsInUse: 1, BombCapacity: 2, FlameRadius: 4})
	assert.Equal(t, "Score 40   Level 2   Lives 3   Bombs 1/2   Flame 4", hud)

	a.Command(CMD_DOWN)
	a.Command(CMD_CONFIRM)
	require.Equal(t, APP_HIGH_SCORES, a.State)
	assert.Equal(t, " 1. Bo                     1200", a.Lines()[2])

	a.Command(CMD_BACK)
	a.Command(CMD_UP)
	play(a)
	a.Command(CMD_CONFIRM)
	require.Equal(t, APP_NAME_INPUT, a.State)
	a.Type('Z')
	lines := a.Lines()
	assert.Equal(t, fmt.Sprintf("New high score: %d", a.Outcome.Score), lines[0])
	assert.Equal(t, "Enter your name: Z_", lines[1])
}
