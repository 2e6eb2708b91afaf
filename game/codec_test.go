package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStartPosition(t *testing.T) {
	b, err := Parse("0000000000000000000000000/1/B3,D3/C2,C4")
	require.NoError(t, err)

	require.Equal(t, Player1, b.Turn)
	require.Equal(t, [2]Cell{11, 13}, b.Workers[0], "B3, D3")
	require.Equal(t, [2]Cell{17, 7}, b.Workers[1], "C2, C4")
	for i, h := range b.Heights {
		require.Zero(t, h, "height at %d", i)
	}
}

func TestParseWorkerTokenForms(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"indices", "0000000000000000000000000/1/11,13/17,7"},
		{"lowercase labels", "0000000000000000000000000/1/b3,d3/c2,c4"},
		{"god prefix", "0000000000000000000000000/1/mortal:B3,D3/mortal:C2,C4"},
		{"hash marker", "0000000000000000000000000/1/#mortal:B3,D3/C2,C4"},
		{"embedded whitespace", "0000000000000000000000000 / 1 / B3, D3 / C2, C4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Parse(tc.text)
			require.NoError(t, err)
			require.Equal(t, [2]Cell{11, 13}, b.Workers[0])
			require.Equal(t, [2]Cell{17, 7}, b.Workers[1])
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"three sections", "0000000000000000000000000/1/B3,D3", ErrSections},
		{"five sections", "0000000000000000000000000/1/B3,D3/C2,C4/x", ErrSections},
		{"short heights", "000/1/B3,D3/C2,C4", ErrHeight},
		{"height digit five", "5000000000000000000000000/1/B3,D3/C2,C4", ErrHeight},
		{"height letter", "a000000000000000000000000/1/B3,D3/C2,C4", ErrHeight},
		{"turn three", "0000000000000000000000000/3/B3,D3/C2,C4", ErrTurn},
		{"turn empty", "0000000000000000000000000//B3,D3/C2,C4", ErrTurn},
		{"one worker", "0000000000000000000000000/1/B3/C2,C4", ErrWorkerField},
		{"bad label", "0000000000000000000000000/1/B9,D3/C2,C4", ErrWorkerField},
		{"index out of range", "0000000000000000000000000/1/25,13/18,8", ErrWorkerRange},
		{"negative index", "0000000000000000000000000/1/-1,13/18,8", ErrWorkerRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	positions := []string{
		"0000000000000000000000000/1/B3,D3/C2,C4",
		"0000000000000000000000000/1/mortal:B3,D3/mortal:C2,C4",
		"0123401234012340123401234/2/0,24/A1,E5",
		"4444444444444444444444444/2/12,13/14,15",
	}
	for _, position := range positions {
		first, err := Parse(position)
		require.NoError(t, err, position)
		again, err := Parse(first.String())
		require.NoError(t, err, first.String())
		require.Equal(t, first, again, "round trip of %s", position)
	}
}

func TestParseAllowsOverlappingWorkers(t *testing.T) {
	// Distinctness is deliberately not a codec invariant; the engine is
	// trusted to emit consistent positions. WorkersDistinct exists for
	// callers that want the check.
	b, err := Parse("0000000000000000000000000/1/B3,B3/C2,C4")
	require.NoError(t, err)
	require.False(t, b.WorkersDistinct())

	ok, err := Parse("0000000000000000000000000/1/B3,D3/C2,C4")
	require.NoError(t, err)
	require.True(t, ok.WorkersDistinct())
}
