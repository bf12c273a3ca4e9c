package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eli-mills/hasami-shogi/engine"
)

func TestParseSquareRoundTrip(t *testing.T) {
	sq, err := ParseSquare("e5")
	require.NoError(t, err)
	assert.Equal(t, "e5", FormatSquare(sq))
}

func TestParseSquareInvalid(t *testing.T) {
	_, err := ParseSquare("j1")
	assert.Error(t, err)
}

func TestParseMoveRoundTrip(t *testing.T) {
	m, err := ParseMove("i5e5")
	require.NoError(t, err)
	assert.Equal(t, "i5e5", FormatMove(m))
}

func TestParseMoveWrongLength(t *testing.T) {
	_, err := ParseMove("i5e55")
	assert.Error(t, err)
	_, err = ParseMove("i5e")
	assert.Error(t, err)
}

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario("active=BLACK; RED: f7,f3,f4,f5; BLACK: i6")
	require.NoError(t, err)

	assert.Equal(t, engine.Black, sc.Active)
	require.Len(t, sc.Stones[engine.Red], 4)
	require.Len(t, sc.Stones[engine.Black], 1)

	f3, err := engine.SquareFromString("f3")
	require.NoError(t, err)
	assert.Contains(t, sc.Stones[engine.Red], f3)
}

func TestParseScenarioMissingActive(t *testing.T) {
	_, err := ParseScenario("RED: f7")
	assert.Error(t, err)
}

func TestParseScenarioMalformedClause(t *testing.T) {
	_, err := ParseScenario("active=BLACK; garbage")
	assert.Error(t, err)
}

func TestFormatScenarioRoundTrip(t *testing.T) {
	sc := &Scenario{
		Active: engine.Black,
		Stones: map[engine.Color][]engine.Square{
			engine.Red:   {sqOrFail(t, "f7"), sqOrFail(t, "f3")},
			engine.Black: {sqOrFail(t, "i6")},
		},
	}

	formatted := FormatScenario(sc)
	reparsed, err := ParseScenario(formatted)
	require.NoError(t, err)
	assert.Equal(t, sc.Active, reparsed.Active)
	assert.ElementsMatch(t, sc.Stones[engine.Red], reparsed.Stones[engine.Red])
	assert.ElementsMatch(t, sc.Stones[engine.Black], reparsed.Stones[engine.Black])
}

func sqOrFail(t *testing.T, s string) engine.Square {
	t.Helper()
	sq, err := engine.SquareFromString(s)
	require.NoError(t, err)
	return sq
}
