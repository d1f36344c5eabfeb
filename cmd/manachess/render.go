package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/game"
)

// Cell markers. A cell is three characters: marker, piece, badge.
const (
	markSelected = '>'
	markTarget   = '*'
	markCapture  = 'x'
	badgeRooted  = '!'
	badgeShield  = '^'
	badgeBoth    = '&'
)

// render draws the board with White at the bottom, followed by the HUD.
func render(out io.Writer, s *game.Session) {
	var sb strings.Builder
	writeBoard(&sb, s)
	writeHUD(&sb, s)
	fmt.Fprint(out, sb.String())
}

func writeBoard(sb *strings.Builder, s *game.Session) {
	pieces := s.BoardMap()
	marks := make(map[chess.Square]byte)
	for _, t := range s.Targets() {
		marks[t.Square] = markTarget
		if t.Capture {
			marks[t.Square] = markCapture
		}
	}
	if sel, ok := s.Selected(); ok {
		marks[sel] = markSelected
	}

	sb.WriteString("   +------------------------+\n")
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		fmt.Fprintf(sb, " %c |", rank)
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			sq := chess.Sq(col, rank)
			sb.WriteByte(orSpace(marks[sq]))
			sb.WriteByte(pieceGlyph(pieces[sq], sq))
			sb.WriteByte(badgeGlyph(s.BadgesAt(sq)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   +------------------------+\n")
	sb.WriteString("     a  b  c  d  e  f  g  h\n")
}

func writeHUD(sb *strings.Builder, s *game.Session) {
	st := s.State()
	fmt.Fprintf(sb, "Turn %d  %s to move  Mana W %d/%d  B %d/%d\n",
		st.Turn, s.ToMove(),
		st.Economy.Mana(chess.White), st.Economy.MaxMana(chess.White),
		st.Economy.Mana(chess.Black), st.Economy.MaxMana(chess.Black))

	if last := s.LastMove(); last != "" {
		fmt.Fprintf(sb, "Last move: %s\n", last)
	}
	if label := s.ModeLabel(); label != "" {
		fmt.Fprintf(sb, "%s\n", label)
	}
	if panel, ok := s.Panel(); ok {
		state := "ready"
		if !panel.Enabled {
			state = panel.Reason
		}
		fmt.Fprintf(sb, "Ability: %s (cost %d) - %s [%s]\n",
			panel.Ability.Title, panel.Ability.Cost, panel.Ability.Description, state)
	}
	if out := s.Outcome(); out.Over {
		if out.Reason == "Checkmate" {
			fmt.Fprintf(sb, "Checkmate, %s wins\n", out.Winner)
		} else {
			fmt.Fprintf(sb, "%s\n", out.Reason)
		}
	} else if out.InCheck {
		fmt.Fprintf(sb, "%s is in check\n", s.ToMove())
	}
	if latest := st.Log.Latest(); latest != "" {
		fmt.Fprintf(sb, "Log: %s\n", latest)
	}
}

// pieceGlyph is the FEN letter of a piece code, or a dot for empty squares.
func pieceGlyph(code string, sq chess.Square) byte {
	if code == "" {
		if sq.IsDark() {
			return ':'
		}
		return '.'
	}
	letter := code[1]
	if code[0] == 'b' {
		return letter + ('a' - 'A')
	}
	return letter
}

func badgeGlyph(b game.Badges) byte {
	switch {
	case b.Rooted && b.Shielded:
		return badgeBoth
	case b.Rooted:
		return badgeRooted
	case b.Shielded:
		return badgeShield
	default:
		return ' '
	}
}

func orSpace(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}
