package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/engine"
)

var (
	errCommandNotFound = errors.New("command not found")
	errSearchRunning   = errors.New("search still run")
)

type Engine interface {
	Prepare()
	Clear()
	Search(ctx context.Context, searchParams engine.SearchParams) engine.SearchInfo
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	position     *board.Position
	thinking     bool
	engineOutput chan engine.SearchInfo
	cancel       context.CancelFunc
	in           io.Reader
	out          io.Writer
}

func New(name, author, version string, eng Engine, options []Option) *Protocol {
	return &Protocol{
		name:     name,
		author:   author,
		version:  version,
		engine:   eng,
		options:  options,
		position: board.NewPosition(),
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

func (uci *Protocol) Run(logger zerolog.Logger) {
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(uci.in, commands)
	}()

	for {
		select {
		case si, ok := <-uci.engineOutput:
			if ok {
				fmt.Fprintln(uci.out, searchInfoToUci(si))
				fmt.Fprintf(uci.out, "bestmove %v\n", si.Move)
				logger.Debug().
					Str("move", si.Move.String()).
					Stringer("status", si.Status).
					Int64("nodes", si.Nodes).
					Msg("search finished")
			} else {
				uci.thinking = false
				uci.cancel = nil
				uci.engineOutput = nil
			}
		case commandLine, ok := <-commands:
			if !ok {
				//uci quit
				if uci.cancel != nil {
					uci.cancel()
				}
				return
			}
			var err = uci.handle(commandLine)
			if err != nil {
				logger.Error().Err(err).Str("command", commandLine).Msg("uci")
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		switch commandName {
		case "stop":
			uci.cancel()
			return nil
		case "isready":
			// the engine belongs to the search goroutine until it reports back
			fmt.Fprintln(uci.out, "readyok")
			return nil
		}
		return errSearchRunning
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "stop":
		// nothing to stop
		return nil
	}

	if h == nil {
		return fmt.Errorf("%w: %v", errCommandNotFound, commandName)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

// setoption name <name> [value <value>]; names and values may contain spaces.
func (uci *Protocol) setOptionCommand(fields []string) error {
	var nameIndex = findIndexString(fields, "name")
	if nameIndex == -1 || nameIndex+1 >= len(fields) {
		return errors.New("invalid setoption arguments")
	}
	var valueIndex = findIndexString(fields, "value")
	var name, value string
	if valueIndex == -1 {
		name = strings.Join(fields[nameIndex+1:], " ")
	} else {
		name = strings.Join(fields[nameIndex+1:valueIndex], " ")
		value = strings.Join(fields[valueIndex+1:], " ")
	}
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			if err := option.Set(value); err != nil {
				return fmt.Errorf("option %v: %w", name, err)
			}
			return nil
		}
	}
	return fmt.Errorf("unhandled option %v", name)
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	uci.engine.Prepare()
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("unknown position command")
	}
	var token = fields[0]
	var fen string
	var movesIndex = findIndexString(fields, "moves")
	if token == "startpos" {
		fen = board.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(fields[1:], " ")
		} else {
			fen = strings.Join(fields[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var p, err = board.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	if movesIndex >= 0 && movesIndex+1 < len(fields) {
		for _, smove := range fields[movesIndex+1:] {
			if err := p.PushLAN(smove); err != nil {
				return fmt.Errorf("parse move failed: %w", err)
			}
		}
	}
	uci.position = p
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var depth, err = parseDepth(fields)
	if err != nil {
		return err
	}
	var ctx, cancel = context.WithCancel(context.Background())
	uci.cancel = cancel
	uci.thinking = true
	uci.engineOutput = make(chan engine.SearchInfo, 1)
	var position = uci.position
	var output = uci.engineOutput
	go func() {
		defer cancel()
		var searchResult = uci.engine.Search(ctx, engine.SearchParams{
			Position: position,
			Depth:    depth,
		})
		output <- searchResult
		close(output)
	}()
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.engine.Clear()
	uci.position = board.NewPosition()
	return nil
}

func searchInfoToUci(si engine.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if plies, ok := engine.MatePlies(si.Score); ok {
		var moves = (plies + 1) / 2
		if si.Score < 0 {
			moves = -plies / 2
		}
		fmt.Fprintf(sb, " score mate %v", moves)
	} else {
		fmt.Fprintf(sb, " score cp %v", int(si.Score))
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if si.HasMove() {
		fmt.Fprintf(sb, " pv %v", si.Move)
	}
	fmt.Fprintf(sb, " string %v", si.Status)
	return sb.String()
}

// parseDepth reads "depth N"; time controls are accepted and ignored.
func parseDepth(args []string) (int, error) {
	for i := 0; i < len(args); i++ {
		if args[i] != "depth" {
			continue
		}
		if i+1 >= len(args) {
			return 0, errors.New("go depth: missing value")
		}
		var depth, err = strconv.Atoi(args[i+1])
		if err != nil || depth < 1 || depth > engine.MaxHeight {
			return 0, fmt.Errorf("go depth: bad value %q", args[i+1])
		}
		return depth, nil
	}
	return 0, nil
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
