package game

import (
	"fmt"

	"github.com/apex/log"

	"github.com/lgbarn/manachess-go/internal/ability"
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/config"
	"github.com/lgbarn/manachess-go/internal/engine"
	"github.com/lgbarn/manachess-go/internal/errors"
	"github.com/lgbarn/manachess-go/internal/hashing"
	"github.com/lgbarn/manachess-go/internal/registry"
	"github.com/lgbarn/manachess-go/internal/status"
)

// Session drives one game from square clicks and cast requests. A Session
// is not safe for concurrent use.
type Session struct {
	logger  log.Interface
	catalog *ability.Catalog

	board       *chess.Board
	state       *State
	history     []*State
	mode        Mode
	selected    *chess.Square
	lastMove    string
	outcome     engine.Outcome
	repetitions *hashing.RepetitionTable
}

// NewSession validates cfg and starts a game from its start position. A nil
// logger uses the apex/log default.
func NewSession(cfg *config.Config, logger log.Interface) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := engine.NewBoardFromFEN(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Log
	}

	s := &Session{
		logger:      logger,
		catalog:     ability.NewCatalog(cfg.Ability),
		board:       board,
		mode:        Idle{},
		repetitions: hashing.NewRepetitionTable(),
	}
	s.publish(NewState(cfg, board))
	s.outcome = engine.Evaluate(board, s.repetitions.Record(board))

	s.logger.WithFields(log.Fields{
		"fen":    engine.BoardToFEN(board),
		"pieces": s.state.Registry.Len(),
	}).Debug("game started")
	return s, nil
}

// State returns the current snapshot.
func (s *Session) State() *State { return s.state }

// History returns every published snapshot, oldest first.
func (s *Session) History() []*State {
	return append([]*State(nil), s.history...)
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board { return s.board.Copy() }

// FEN returns the current position.
func (s *Session) FEN() string { return engine.BoardToFEN(s.board) }

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Colour { return s.board.ToMove }

// Mode returns the resolver mode.
func (s *Session) Mode() Mode { return s.mode }

// Outcome returns the game-over status for the side to move.
func (s *Session) Outcome() engine.Outcome { return s.outcome }

// LastMove returns the label of the last board move, such as "Nc3" or "O-O".
func (s *Session) LastMove() string { return s.lastMove }

// Selected returns the selected square.
func (s *Session) Selected() (chess.Square, bool) {
	if s.selected == nil {
		return chess.Square{}, false
	}
	return *s.selected, true
}

// Click handles a click on sq. Clicks on a legal target of the selection
// move the piece, clicks while casting feed the resolver and any other
// click changes the selection. A capture absorbed by a shield returns an
// error wrapping ErrCaptureBlocked; the turn has still passed.
func (s *Session) Click(sq chess.Square) error {
	if !sq.Valid() {
		return errors.ErrInvalidSquare
	}
	if s.outcome.Over {
		return &errors.ActionError{Err: errors.ErrGameOver, Turn: s.state.Turn, Square: sq.String()}
	}

	var err error
	switch m := s.mode.(type) {
	case Idle:
		err = s.clickIdle(sq)
	case CastingMove:
		err = s.clickCastingMove(m, sq)
	case CastingTarget:
		s.clickCastingTarget(m, sq)
	default:
		panic(fmt.Sprintf("game: unknown resolver mode %T", m))
	}

	if _, idle := s.mode.(Idle); idle && !s.outcome.Over {
		s.passIfStalled()
	}
	return err
}

// Cast starts the ability of the selected piece. Movement abilities enter
// CastingMove; instant abilities resolve at once without ending the turn.
// A refused cast changes nothing and returns an *errors.ActionError.
func (s *Session) Cast() error {
	if s.outcome.Over {
		return &errors.ActionError{Err: errors.ErrGameOver, Turn: s.state.Turn}
	}
	if _, idle := s.mode.(Idle); !idle {
		return &errors.ActionError{Err: errors.ErrAlreadyCasting, Turn: s.state.Turn}
	}
	sq, ok := s.Selected()
	if !ok {
		return &errors.ActionError{Err: errors.ErrNoSelection, Turn: s.state.Turn}
	}

	id, def, err := s.abilityAt(sq)
	if err != nil {
		return err
	}
	side := s.board.ToMove
	if err := checkAbility(s.state, id, sq, side, def); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"ability": def.Title,
			"square":  sq.String(),
			"reason":  errors.Reason(err),
		}).Info("cast refused")
		return err
	}

	switch def.Kind {
	case ability.Movement:
		s.mode = CastingMove{
			Ability: def,
			Caster:  id,
			From:    sq,
			Targets: engine.LegalMovesFrom(s.board, sq),
		}
		s.logger.WithFields(log.Fields{"ability": def.Title, "square": sq.String()}).Debug("casting")
	case ability.Instant:
		s.castShield(id, sq, side, def)
	}
	return nil
}

// Panel describes the ability of the selected piece. ok is false when
// nothing is selected or the piece has no ability.
func (s *Session) Panel() (panel Panel, ok bool) {
	sq, selected := s.Selected()
	if !selected {
		return Panel{}, false
	}
	id, def, err := s.abilityAt(sq)
	if err != nil {
		return Panel{}, false
	}

	err = checkAbility(s.state, id, sq, s.board.ToMove, def)
	if _, idle := s.mode.(Idle); err == nil && !idle {
		err = errors.ErrAlreadyCasting
	}
	return Panel{Ability: def, Enabled: err == nil, Reason: errors.Reason(err)}, true
}

func (s *Session) abilityAt(sq chess.Square) (registry.ID, ability.Definition, error) {
	id, ok := s.state.Registry.IDAt(sq)
	if !ok {
		return registry.ID{}, ability.Definition{}, &errors.ActionError{Err: errors.ErrNoSelection, Turn: s.state.Turn, Square: sq.String()}
	}
	piece, _ := s.state.Registry.Piece(id)
	def, ok := s.catalog.ForPiece(piece.Type)
	if !ok {
		return id, ability.Definition{}, &errors.ActionError{Err: errors.ErrNoAbility, Turn: s.state.Turn, Square: sq.String()}
	}
	return id, def, nil
}

// moveTargets lists the moves open to the piece on sq. Rooted pieces have none.
func (s *Session) moveTargets(sq chess.Square) []engine.LegalMove {
	if id, ok := s.state.Registry.IDAt(sq); ok && s.state.Rooted(id) {
		return nil
	}
	return engine.LegalMovesFrom(s.board, sq)
}

func (s *Session) clickIdle(sq chess.Square) error {
	if from, ok := s.Selected(); ok {
		if lm, found := findMove(s.moveTargets(from), sq); found {
			return s.move(from, lm)
		}
	}
	s.selectSquare(sq)
	return nil
}

func (s *Session) selectSquare(sq chess.Square) {
	p := s.board.At(sq)
	if !chess.IsOccupied(p) || chess.ExtractColour(p) != s.board.ToMove {
		s.selected = nil
		return
	}
	s.selected = &sq
}

// move plays an ordinary move.
func (s *Session) move(from chess.Square, lm engine.LegalMove) error {
	if blocked, err := s.blockIfShielded(from, lm); blocked {
		return err
	}

	side := s.board.ToMove
	board := s.board.Copy()
	move, err := engine.Play(board, from, lm.To, chess.Empty)
	if err != nil {
		s.logger.WithError(err).Warn("listed move rejected")
		s.selected = nil
		return err
	}
	s.commit(board, move, s.state, describe(s.state.Turn, side, move.Text))
	return nil
}

func (s *Session) clickCastingMove(m CastingMove, sq chess.Square) error {
	s.mode = Idle{}

	lm, ok := findMove(m.Targets, sq)
	if !ok {
		s.cancel(m.Ability, sq)
		return nil
	}
	if blocked, err := s.blockIfShielded(m.From, lm); blocked {
		return err
	}

	side := s.board.ToMove
	castTurn := s.state.Turn
	board := s.board.Copy()
	move, err := engine.Play(board, m.From, sq, chess.Empty)
	if err != nil {
		s.logger.WithError(err).Info("charge rejected")
		s.selected = nil
		return err
	}

	pre := s.state.with(func(n *State) {
		n.Economy = n.Economy.Cast(side, m.Caster, m.Ability, castTurn)
	})
	s.commit(board, move, pre, describe(castTurn, side, m.Ability.Title+" "+move.Text))
	if s.outcome.Over {
		return nil
	}

	if targets := s.adjacentEnemies(sq, side); len(targets) > 0 {
		s.mode = CastingTarget{Ability: m.Ability, Landing: sq, Targets: targets, CastTurn: castTurn}
	}
	return nil
}

func (s *Session) clickCastingTarget(m CastingTarget, sq chess.Square) {
	s.mode = Idle{}

	id, ok := s.state.Registry.IDAt(sq)
	if !ok || !containsSquare(m.Targets, sq) {
		s.cancel(m.Ability, sq)
		return
	}

	expires := m.CastTurn + m.Ability.Duration
	caster := s.board.ToMove.Opposite()
	s.publish(s.state.with(func(n *State) {
		n.Statuses = n.Statuses.Add(id, status.Status{Kind: status.Rooted, ExpiresOnTurn: expires})
		n.Log = n.Log.Prepend(describe(m.CastTurn, caster, fmt.Sprintf("roots %s until turn %d", sq, expires)))
	}))
	s.logger.WithFields(log.Fields{
		"square":  sq.String(),
		"piece":   id.Short(),
		"expires": expires,
	}).Debug("rooted")
}

// castShield resolves an instant ability. The turn does not pass.
func (s *Session) castShield(id registry.ID, sq chess.Square, side chess.Colour, def ability.Definition) {
	s.publish(s.state.with(func(n *State) {
		n.Economy = n.Economy.Cast(side, id, def, n.Turn)
		n.Statuses = n.Statuses.Add(id, status.Status{Kind: status.Shielded, ExpiresOnTurn: n.Turn + def.Duration})
		n.Log = n.Log.Prepend(describe(n.Turn, side, fmt.Sprintf("%s on %s", def.Title, sq)))
	}))
	s.logger.WithFields(log.Fields{
		"ability": def.Title,
		"square":  sq.String(),
		"mana":    s.state.Economy.Mana(side),
	}).Debug("cast")
}

// blockIfShielded turns a capture of a shielded piece into a pass that
// consumes the shield. The attacker stays where it is.
func (s *Session) blockIfShielded(from chess.Square, lm engine.LegalMove) (bool, error) {
	if !lm.Capture {
		return false, nil
	}
	target := victimSquare(from, lm)
	victim, ok := s.state.Registry.IDAt(target)
	if !ok || !s.state.Shielded(victim) {
		return false, nil
	}

	side := s.board.ToMove
	pre := s.state.with(func(n *State) {
		n.Statuses = n.Statuses.ConsumeOne(victim, status.Shielded)
	})
	board := s.board.Copy()
	pass := engine.Pass(board)
	s.commit(board, pass, pre, describe(s.state.Turn, side, fmt.Sprintf("capture on %s blocked by shield", target)))

	s.logger.WithFields(log.Fields{"from": from.String(), "target": target.String()}).Info("capture blocked")
	return true, &errors.ActionError{Err: errors.ErrCaptureBlocked, Turn: pre.Turn, Square: target.String()}
}

// commit installs board and runs the turn cycle from pre.
func (s *Session) commit(board *chess.Board, move *chess.Move, pre *State, description string) {
	next, reconciled := Advance(pre, Action{Move: move, Description: description})
	if !reconciled {
		s.logger.WithFields(log.Fields{
			"move": move.Text,
			"from": move.From().String(),
		}).Warn("no identity on source square, registry unchanged")
	}

	s.board = board
	s.publish(next)
	s.selected = nil
	if !move.IsNull() {
		s.lastMove = move.Text
	}
	s.outcome = engine.Evaluate(board, s.repetitions.Record(board))

	s.logger.WithFields(log.Fields{
		"turn": next.Turn,
		"move": move.Text,
		"fen":  engine.BoardToFEN(board),
	}).Debug("turn")
	if s.outcome.Over {
		s.logger.WithField("reason", s.outcome.Reason).Info("game over")
	}
}

// passIfStalled passes the turn when every piece of the side to move that
// has a legal move is rooted. A side held in place while in check has
// lost: it cannot pass out of check.
func (s *Session) passIfStalled() {
	side := s.board.ToMove
	for _, e := range s.state.Registry.Entries() {
		if e.Piece.Side == side && len(s.moveTargets(e.Square)) > 0 {
			return
		}
	}

	if engine.IsInCheck(s.board, side) {
		s.outcome = engine.Outcome{
			Over:    true,
			Reason:  engine.ReasonCheckmate,
			Winner:  side.Opposite(),
			InCheck: true,
		}
		s.publish(s.state.with(func(n *State) {
			n.Log = n.Log.Prepend(describe(n.Turn, side, "held in check, checkmate"))
		}))
		s.selected = nil
		s.logger.WithFields(log.Fields{
			"reason": s.outcome.Reason,
			"winner": s.outcome.Winner.String(),
		}).Info("game over")
		return
	}

	board := s.board.Copy()
	pass := engine.Pass(board)
	s.commit(board, pass, s.state, describe(s.state.Turn, side, "held in place, turn passes"))
	s.logger.WithField("side", side.String()).Info("no unrooted piece can move")
}

func (s *Session) cancel(def ability.Definition, sq chess.Square) {
	s.selected = nil
	s.logger.WithFields(log.Fields{"ability": def.Title, "square": sq.String()}).Debug("cast cancelled")
}

// adjacentEnemies lists the opponents of side touching sq.
func (s *Session) adjacentEnemies(sq chess.Square, side chess.Colour) []chess.Square {
	var targets []chess.Square
	for _, n := range sq.Adjacent() {
		id, ok := s.state.Registry.IDAt(n)
		if !ok {
			continue
		}
		if p, _ := s.state.Registry.Piece(id); p.Side != side {
			targets = append(targets, n)
		}
	}
	return targets
}

func (s *Session) publish(st *State) {
	s.state = st
	s.history = append(s.history, st)
}

func describe(turn int, side chess.Colour, text string) string {
	return fmt.Sprintf("%d. %s %s", turn, side, text)
}
