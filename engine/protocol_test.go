package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"santorini/game"
)

func TestDecodeStarted(t *testing.T) {
	reply, err := DecodeReply([]byte(`{"type":"started"}`))
	require.NoError(t, err)
	require.IsType(t, &Started{}, reply)
}

func TestDecodeNextMoves(t *testing.T) {
	line := `{"type":"next_moves","start_state":"P0","next_states":[` +
		`{"actions":[{"type":"select_worker","value":"b3"},{"type":"move_worker","value":"c3"},{"type":"build","value":"b3"}],"next_state":"P1"},` +
		`{"actions":[{"type":"select_worker","value":"b3"}],"next_state":"P2"}]}`

	reply, err := DecodeReply([]byte(line))
	require.NoError(t, err)

	nm, ok := reply.(*NextMoves)
	require.True(t, ok)
	require.Equal(t, "P0", nm.StartState)
	require.Len(t, nm.NextStates, 2)
	require.Equal(t, game.ActionSequence{
		Actions: []game.Action{
			{Kind: game.SelectWorker, Cell: 11},
			{Kind: game.MoveWorker, Cell: 12},
			{Kind: game.Build, Cell: 11},
		},
		Result: "P1",
	}, nm.NextStates[0])
	require.Equal(t, "P2", nm.NextStates[1].Result)
}

func TestDecodeNextMovesDropsUndecodableFuture(t *testing.T) {
	// One future carries an action outside the known set; it is dropped
	// alone, the rest of the reply survives.
	line := `{"type":"next_moves","start_state":"P0","next_states":[` +
		`{"actions":[{"type":"set_wind_direction","value":null}],"next_state":"P1"},` +
		`{"actions":[{"type":"build","value":"a1"}],"next_state":"P2"}]}`

	reply, err := DecodeReply([]byte(line))
	require.NoError(t, err)

	nm := reply.(*NextMoves)
	require.Len(t, nm.NextStates, 1)
	require.Equal(t, "P2", nm.NextStates[0].Result)
}

func TestDecodeBestMove(t *testing.T) {
	line := `{"type":"best_move","start_state":"P0","next_state":"P1","trigger":"improvement",` +
		`"meta":{"actions":[{"type":"select_worker","value":"b3"},{"type":"DONE"}],` +
		`"score":-17.5,"elapsed_seconds":0.25,"calculated_depth":12}}`

	reply, err := DecodeReply([]byte(line))
	require.NoError(t, err)

	bm, ok := reply.(*BestMove)
	require.True(t, ok)
	require.Equal(t, "P0", bm.StartState)
	require.Equal(t, "P1", bm.NextState)
	require.Equal(t, "improvement", bm.Trigger)
	require.Equal(t, -17.5, bm.Meta.Score)
	require.Equal(t, 12, bm.Meta.CalculatedDepth)
	require.Equal(t, []game.Action{
		{Kind: game.SelectWorker, Cell: 11},
		{Kind: game.Done},
	}, bm.Meta.Actions)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, line := range []string{
		`not json at all`,
		`{"type":"score_update"}`,
		`{"type":"best_move","meta":"nope"}`,
	} {
		_, err := DecodeReply([]byte(line))
		require.Error(t, err, line)
	}
}
