package engine

import (
	"context"
	"fmt"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// Process runs the engine as a child process with a command pipe on stdin, a
// reply stream on stdout, and a diagnostic stream on stderr. Each inbound
// stream gets its own blocking listener goroutine; there is no polling.
type Process struct {
	cmd     *exec.Cmd
	client  *Client
	readers *errgroup.Group
}

// Start launches the engine argv and begins listening. Decoded replies are
// delivered on the given channel until the engine exits; the channel is
// closed once both streams drain.
func Start(ctx context.Context, argv []string, replies chan<- Reply) (*Process, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty engine command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stderr: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting engine %q: %w", argv[0], err)
	}

	g := new(errgroup.Group)
	g.Go(func() error { return ListenReplies(stdout, replies) })
	g.Go(func() error { return ListenDiagnostics(stderr) })
	go func() {
		g.Wait()
		close(replies)
	}()

	return &Process{cmd: cmd, client: NewClient(stdin), readers: g}, nil
}

// Client returns the command writer for this process.
func (p *Process) Client() *Client {
	return p.client
}

// Wait blocks until the engine exits and both listeners drain. An engine that
// dies mid-session is the one unrecoverable condition; the error surfaces to
// the caller instead of being retried.
func (p *Process) Wait() error {
	rerr := p.readers.Wait()
	if err := p.cmd.Wait(); err != nil {
		return fmt.Errorf("engine exited: %w", err)
	}
	return rerr
}
