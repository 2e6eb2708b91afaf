package engine

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Client writes engine commands, one per line. Commands are fire-and-forget:
// there are no request identifiers and no reply correlation beyond the
// position string the engine echoes back, so the only failure a caller sees
// here is a broken pipe.
type Client struct {
	commands io.Writer
}

func NewClient(commands io.Writer) *Client {
	return &Client{commands: commands}
}

// SetPosition tells the engine to start searching from a position.
func (c *Client) SetPosition(position string) error {
	return c.send("set_position " + position)
}

// NextMoves asks the engine to enumerate every legal turn from a position.
func (c *Client) NextMoves(position string) error {
	return c.send("next_moves " + position)
}

// Quit asks the engine process to exit.
func (c *Client) Quit() error {
	return c.send("quit")
}

func (c *Client) send(command string) error {
	if _, err := io.WriteString(c.commands, command+"\n"); err != nil {
		return fmt.Errorf("send %q: %w", command, err)
	}
	return nil
}

// maxReplyLine bounds a single reply line; next_moves replies carry every
// future for a position and easily outgrow bufio's default.
const maxReplyLine = 4 << 20

// ListenReplies blocks on the reply stream, decoding one message per line
// into the channel until the stream closes. Malformed lines are logged and
// dropped so one bad message never stalls the ones behind it.
func ListenReplies(r io.Reader, replies chan<- Reply) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxReplyLine)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		reply, err := DecodeReply(line)
		if err != nil {
			log.Warn().Err(err).Msg("dropping malformed engine reply")
			continue
		}
		replies <- reply
	}
	return scanner.Err()
}

// ListenDiagnostics drains the engine's diagnostic stream into the log.
func ListenDiagnostics(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxReplyLine)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			log.Debug().Str("stream", "engine").Msg(line)
		}
	}
	return scanner.Err()
}
