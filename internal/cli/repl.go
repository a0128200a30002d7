package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. *App satisfies it.
type execIface interface {
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Park(ctx context.Context) error
	Spot(ctx context.Context) error
	Directions(ctx context.Context) error
	Clear(ctx context.Context) error
	TimerStart(ctx context.Context) error
	TimerCancel(ctx context.Context) error
	TimerStatus(ctx context.Context) error
	Sync(ctx context.Context) error
	Logout(ctx context.Context) error
}

const helpText = `Commands:
  register          create an account and sign in
  login             sign in
  park              save where you parked
  spot              show the saved parking spot
  directions        print a maps link back to the spot
  clear             forget the saved spot
  timer start       start a parking countdown
  timer cancel      stop the countdown
  timer status      show time remaining
  sync              push a staged spot save to the server
  logout            sign out
  help              show this message
  exit              quit`

// Run reads commands from reader and dispatches them until exit or EOF.
// The reader is shared with the App's interactive prompts, so both read
// through the same buffer.
func Run(ctx context.Context, app execIface, reader *bufio.Reader, out io.Writer) error {
	printlnFn := func(a ...any) {
		fmt.Fprintln(out, a...)
	}

	printlnFn("Parking spot tracker. Type 'help' for commands.")

	for {
		fmt.Fprint(out, "> ")
		raw, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if strings.TrimSpace(raw) == "" {
					return nil
				}
			} else {
				return err
			}
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := strings.ToLower(fields[0])

		switch cmd {
		case "help":
			printlnFn(helpText)
		case "register":
			_ = app.Register(ctx)
		case "login":
			_ = app.Login(ctx)
		case "park":
			_ = app.Park(ctx)
		case "spot":
			_ = app.Spot(ctx)
		case "directions":
			_ = app.Directions(ctx)
		case "clear":
			_ = app.Clear(ctx)
		case "timer":
			if len(fields) < 2 {
				printlnFn("Usage: timer start|cancel|status")
				continue
			}
			switch strings.ToLower(fields[1]) {
			case "start":
				_ = app.TimerStart(ctx)
			case "cancel":
				_ = app.TimerCancel(ctx)
			case "status":
				_ = app.TimerStatus(ctx)
			default:
				printlnFn("Usage: timer start|cancel|status")
			}
		case "sync":
			_ = app.Sync(ctx)
		case "logout":
			_ = app.Logout(ctx)
		case "exit", "quit":
			printlnFn("Bye.")
			return nil
		default:
			printlnFn("Unknown command. Type 'help' for the list.")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}
