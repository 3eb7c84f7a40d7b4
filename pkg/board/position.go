package board

import (
	"errors"
	"fmt"

	dragon "github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

const InitialPositionFen = dragon.Startpos

var (
	ErrInvalidFEN    = errors.New("invalid fen")
	ErrIllegalMove   = errors.New("illegal move")
	errUnbalancedPop = errors.New("board: pop without matching push")
)

// Position is a mutable chess position with a push/pop history.
// It must be used through a pointer: every pending undo closure refers to it.
type Position struct {
	board   dragon.Board
	history []undoEntry
}

type undoEntry struct {
	move   Move
	unmake func()
}

func NewPosition() *Position {
	return &Position{board: dragon.ParseFen(InitialPositionFen)}
}

func NewPositionFromFEN(fen string) (p *Position, err error) {
	// dragontoothmg trusts its input, notnil/chess reports malformed FEN.
	if _, err := chess.FEN(fen); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidFEN, fen, err)
	}
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("%w %q: %v", ErrInvalidFEN, fen, r)
		}
	}()
	return &Position{board: dragon.ParseFen(fen)}, nil
}

func (p *Position) FEN() string {
	return p.board.ToFen()
}

func (p *Position) String() string {
	return p.FEN()
}

func (p *Position) SideToMove() Side {
	if p.board.Wtomove {
		return White
	}
	return Black
}

func (p *Position) LegalMoves() []Move {
	var raw = p.board.GenerateLegalMoves()
	var result = make([]Move, len(raw))
	for i := range raw {
		result[i] = Move{raw: raw[i]}
	}
	return result
}

func (p *Position) IsCheck() bool {
	return p.board.OurKingInCheck()
}

func (p *Position) IsCheckmate() bool {
	return p.IsCheck() && len(p.board.GenerateLegalMoves()) == 0
}

func (p *Position) IsStalemate() bool {
	return !p.IsCheck() && len(p.board.GenerateLegalMoves()) == 0
}

// Push applies m, which must come from LegalMoves of the current position.
func (p *Position) Push(m Move) {
	if m == MoveEmpty {
		panic(fmt.Errorf("board: push of empty move in %v", p.FEN()))
	}
	var unmake = p.board.Apply(m.raw)
	p.history = append(p.history, undoEntry{move: m, unmake: unmake})
}

// Pop undoes the most recent Push. Calling it with no outstanding push
// is a contract violation and panics.
func (p *Position) Pop() Move {
	var n = len(p.history)
	if n == 0 {
		panic(errUnbalancedPop)
	}
	var last = p.history[n-1]
	p.history[n-1] = undoEntry{}
	p.history = p.history[:n-1]
	last.unmake()
	return last.move
}

// Depth returns the number of pushes not yet popped.
func (p *Position) Depth() int {
	return len(p.history)
}

func (p *Position) LastMove() (Move, bool) {
	if len(p.history) == 0 {
		return MoveEmpty, false
	}
	return p.history[len(p.history)-1].move, true
}

func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	var mask = uint64(1) << uint(sq)
	if p.board.White.All&mask != 0 {
		return Piece{Side: White, Kind: kindOf(&p.board.White, mask)}
	}
	if p.board.Black.All&mask != 0 {
		return Piece{Side: Black, Kind: kindOf(&p.board.Black, mask)}
	}
	return NoPiece
}

func kindOf(bb *dragon.Bitboards, mask uint64) Kind {
	switch {
	case bb.Pawns&mask != 0:
		return Pawn
	case bb.Knights&mask != 0:
		return Knight
	case bb.Bishops&mask != 0:
		return Bishop
	case bb.Rooks&mask != 0:
		return Rook
	case bb.Queens&mask != 0:
		return Queen
	case bb.Kings&mask != 0:
		return King
	}
	return Empty
}

// ParseMove finds the legal move written in long algebraic notation.
func (p *Position) ParseMove(lan string) (Move, error) {
	for _, m := range p.LegalMoves() {
		if m.String() == lan {
			return m, nil
		}
	}
	return MoveEmpty, fmt.Errorf("%w %v in %v", ErrIllegalMove, lan, p.FEN())
}

// PushLAN parses and applies a move in long algebraic notation.
func (p *Position) PushLAN(lan string) error {
	var m, err = p.ParseMove(lan)
	if err != nil {
		return err
	}
	p.Push(m)
	return nil
}
