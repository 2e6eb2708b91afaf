package engine

import (
	"strings"
	"testing"
)

func TestClientWritesCommands(t *testing.T) {
	var out strings.Builder
	c := NewClient(&out)

	if err := c.SetPosition("P0"); err != nil {
		t.Fatal(err)
	}
	if err := c.NextMoves("P0"); err != nil {
		t.Fatal(err)
	}
	if err := c.Quit(); err != nil {
		t.Fatal(err)
	}

	want := "set_position P0\nnext_moves P0\nquit\n"
	if got := out.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestListenRepliesSkipsMalformedLines(t *testing.T) {
	stream := strings.Join([]string{
		`{"type":"started"}`,
		`this line is noise`,
		``,
		`{"type":"next_moves","start_state":"P0","next_states":[]}`,
	}, "\n")

	replies := make(chan Reply, 4)
	if err := ListenReplies(strings.NewReader(stream), replies); err != nil {
		t.Fatal(err)
	}
	close(replies)

	var got []Reply
	for r := range replies {
		got = append(got, r)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 decoded replies, got %d", len(got))
	}
	if _, ok := got[0].(*Started); !ok {
		t.Errorf("expected Started first, got %T", got[0])
	}
	nm, ok := got[1].(*NextMoves)
	if !ok || nm.StartState != "P0" {
		t.Errorf("expected NextMoves for P0, got %#v", got[1])
	}
}
