package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wricardo/slide2048/game/engine"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// firstCell always picks the first empty cell and spawns a two
type firstCell struct {
	calls int
}

func (s *firstCell) IntN(int) int {
	s.calls++
	return 0
}

func render(t *testing.T, b engine.Board) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderBoard(&buf, b))
	return buf.String()
}

var stalledBoard = engine.Board{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func TestGameRun_StalledBoardEndsImmediately(t *testing.T) {
	eng := engine.NewEngineFromBoard(stalledBoard, &firstCell{})
	var out bytes.Buffer

	// No input at all: a stalled board must not read
	err := NewGame(eng, strings.NewReader(""), &out, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, render(t, stalledBoard)+GameOverMessage+"\n", out.String())
}

func TestGameRun_InvalidInputReprompts(t *testing.T) {
	start := engine.Board{{2, 2, 0, 0}}
	rng := &firstCell{}
	eng := engine.NewEngineFromBoard(start, rng)
	var out bytes.Buffer

	err := NewGame(eng, strings.NewReader("x\n\nW\n"), &out, nil).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))

	// Initial render plus one per ignored line, all identical
	assert.Equal(t, strings.Repeat(render(t, start), 4), out.String())
	assert.Zero(t, rng.calls)
	assert.Equal(t, start, eng.Board())
}

func TestGameRun_NoOpMoveRerendersSameBoard(t *testing.T) {
	start := engine.Board{{4, 2, 0, 0}}
	rng := &firstCell{}
	eng := engine.NewEngineFromBoard(start, rng)
	var out bytes.Buffer

	err := NewGame(eng, strings.NewReader("a\nw\n"), &out, nil).Run()
	assert.True(t, errors.Is(err, ErrInputClosed))

	assert.Equal(t, strings.Repeat(render(t, start), 3), out.String())
	assert.Zero(t, rng.calls, "no tile may spawn on a no-op move")
}

func TestGameRun_EffectiveMoveSpawnsTile(t *testing.T) {
	start := engine.Board{{2, 2, 0, 0}}
	eng := engine.NewEngineFromBoard(start, &firstCell{})
	var out bytes.Buffer

	err := NewGame(eng, strings.NewReader("a\n"), &out, nil).Run()
	assert.True(t, errors.Is(err, ErrInputClosed))

	afterMove := engine.Board{{4, 2, 0, 0}}
	assert.Equal(t, render(t, start)+render(t, afterMove), out.String())
	assert.Equal(t, afterMove, eng.Board())
}

func TestGameRun_PlaysToGameOver(t *testing.T) {
	// Sliding west leaves one gap in the corner and the spawned two fills it
	// without creating an equal pair.
	start := engine.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{0, 8, 16, 32},
	}
	final := engine.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{8, 16, 32, 2},
	}
	core, logs := observer.New(zap.InfoLevel)
	eng := engine.NewEngineFromBoard(start, &firstCell{})
	var out bytes.Buffer

	err := NewGame(eng, strings.NewReader("a\n"), &out, zap.New(core)).Run()
	require.NoError(t, err)

	assert.Equal(t, render(t, start)+render(t, final)+GameOverMessage+"\n", out.String())
	assert.Equal(t, final, eng.Board())
	assert.Equal(t, 1, logs.FilterMessage("Game over").Len())
}

func TestGameRun_SeededGameIsReproducible(t *testing.T) {
	play := func() string {
		eng, err := engine.NewEngine(engine.NewRandomSource(2048))
		require.NoError(t, err)
		var out bytes.Buffer
		err = NewGame(eng, strings.NewReader("a\nw\nd\ns\na\nq\n"), &out, nil).Run()
		require.True(t, errors.Is(err, ErrInputClosed))
		return out.String()
	}

	assert.Equal(t, play(), play())
}
