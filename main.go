package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"santorini/engine"
	"santorini/game"
	"santorini/session"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	engineCmd := flag.String("engine", "", "engine command, overrides the config")
	position := flag.String("position", "", "seed position string, overrides the config")
	debug := flag.Bool("debug", false, "log engine diagnostics")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *engineCmd != "" {
		cfg.Engine = strings.Fields(*engineCmd)
	}
	if *position != "" {
		cfg.Position = *position
	}
	if *debug {
		cfg.Debug = true
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("session ended")
	}
}

func run(cfg config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	replies := make(chan engine.Reply, 16)
	proc, err := engine.Start(ctx, cfg.Engine, replies)
	if err != nil {
		return err
	}
	exited := make(chan error, 1)
	go func() { exited <- proc.Wait() }()

	console := &consolePresenter{out: os.Stdout}
	sess, err := session.New(cfg.Position, proc.Client(), console)
	if err != nil {
		return err
	}

	lines := make(chan string)
	go readLines(os.Stdin, lines)

	// Single interaction loop: user input and engine replies both funnel
	// through here, so session state never sees concurrent mutation.
	for {
		select {
		case reply, ok := <-replies:
			if !ok {
				// Streams drained; the exit status arrives on exited.
				replies = nil
				continue
			}
			sess.HandleReply(reply)
		case line, ok := <-lines:
			if !ok || !dispatch(sess, console, line) {
				proc.Client().Quit()
				// Keep draining replies until the listeners close the
				// channel: a mid-search engine streams more lines than the
				// channel buffers, and an undrained listener would block
				// Wait forever.
				if replies != nil {
					for range replies {
					}
				}
				<-exited
				return nil
			}
		case err := <-exited:
			if err == nil {
				return fmt.Errorf("engine exited unexpectedly")
			}
			return err
		}
	}
}

// dispatch runs one console command, reporting false on quit.
func dispatch(sess *session.Session, console *consolePresenter, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	cmd, rest, _ := strings.Cut(line, " ")

	switch cmd {
	case "quit", "exit":
		return false
	case "pos":
		if err := sess.SetPosition(rest); err != nil {
			fmt.Printf("invalid position: %v\n", err)
		}
	case "undo":
		if !sess.Undo() {
			fmt.Println("already at the oldest position")
		}
	case "redo":
		if !sess.Redo() {
			fmt.Println("already at the newest position")
		}
	case "best":
		if err := sess.PlayBest(); err != nil {
			fmt.Println(err)
		}
	case "rand":
		if err := sess.PlayRandom(); err != nil {
			fmt.Println(err)
		}
	case "show":
		board, err := game.Parse(sess.Current())
		if err == nil {
			console.Position(board, sess.Current())
		}
		console.Choices(sess.Options())
	case "help":
		printHelp()
	default:
		n, err := strconv.Atoi(cmd)
		if err != nil {
			fmt.Printf("unknown command %q (try help)\n", cmd)
			return true
		}
		if err := sess.Choose(n - 1); err != nil {
			fmt.Println(err)
		}
	}
	return true
}

func printHelp() {
	fmt.Print(`commands:
  <n>          pick the n-th offered action
  pos <text>   set the current position
  undo / redo  walk the position history
  best         play the engine's current best move
  rand         play a random legal turn
  show         reprint the board and offered actions
  quit         exit
`)
}

func readLines(r io.Reader, lines chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	close(lines)
}
