// Package notation implements parsing and formatting of Hasami Shogi
// square and move text, plus a small scenario mini-language for seeding
// non-starting positions in tests (inspired by the teacher's EPD
// key/value, semicolon-terminated clause style, but far smaller: there
// is no position-description standard for this game to parse).
package notation

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/eli-mills/hasami-shogi/engine"
)

// UndoToken is the special move-string the terminal driver recognizes in
// place of a four-character move (§6).
const UndoToken = "undo"

// ParseSquare parses row-letter/col-digit notation, e.g. "e5".
func ParseSquare(s string) (engine.Square, error) {
	sq, err := engine.SquareFromString(s)
	if err != nil {
		return engine.NoSquare, errors.Wrapf(err, "parsing square %q", s)
	}
	return sq, nil
}

// FormatSquare renders sq in row-letter/col-digit notation.
func FormatSquare(sq engine.Square) string {
	return sq.String()
}

// ParseMove parses a four-character move string, e.g. "i5e5".
func ParseMove(s string) (engine.Move, error) {
	if len(s) != 4 {
		return engine.Move{}, errors.Errorf("move %q: want 4 characters, got %d", s, len(s))
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return engine.Move{}, errors.Wrapf(err, "move %q: from-square", s)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return engine.Move{}, errors.Wrapf(err, "move %q: to-square", s)
	}
	return engine.Move{From: from, To: to}, nil
}

// FormatMove renders m as a four-character move string.
func FormatMove(m engine.Move) string {
	return m.String()
}

// Scenario is a non-starting position, for tests that need to seed
// specific stones (§8 S3-S6 are all written this way in prose).
type Scenario struct {
	Stones map[engine.Color][]engine.Square
	Active engine.Color
}

// ParseScenario parses a clause list of the form
// "active=BLACK; RED: f7,f3,f4,f5; BLACK: i6". Clause order does not
// matter; an "active=" clause is required exactly once.
func ParseScenario(s string) (*Scenario, error) {
	sc := &Scenario{Stones: map[engine.Color][]engine.Square{}}
	sawActive := false

	for _, clause := range strings.Split(s, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if rest, ok := cutPrefix(clause, "active="); ok {
			if sawActive {
				return nil, errors.Errorf("scenario %q: duplicate active= clause", s)
			}
			c, err := parseColorName(strings.TrimSpace(rest))
			if err != nil {
				return nil, errors.Wrapf(err, "scenario %q", s)
			}
			sc.Active = c
			sawActive = true
			continue
		}

		parts := strings.SplitN(clause, ":", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("scenario %q: malformed clause %q", s, clause)
		}
		color, err := parseColorName(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q", s)
		}
		for _, token := range strings.Split(parts[1], ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			sq, err := ParseSquare(token)
			if err != nil {
				return nil, errors.Wrapf(err, "scenario %q: square %q", s, token)
			}
			sc.Stones[color] = append(sc.Stones[color], sq)
		}
	}

	if !sawActive {
		return nil, errors.Errorf("scenario %q: missing active= clause", s)
	}
	return sc, nil
}

func parseColorName(s string) (engine.Color, error) {
	switch strings.ToUpper(s) {
	case "RED":
		return engine.Red, nil
	case "BLACK":
		return engine.Black, nil
	default:
		return engine.Empty, errors.Errorf("unknown color %q", s)
	}
}

// cutPrefix is strings.CutPrefix, written out here to keep the parser
// self-contained.
func cutPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// FormatScenario renders sc back into ParseScenario's clause syntax, in
// a fixed color order, mainly for logging seeded fixtures.
func FormatScenario(sc *Scenario) string {
	var b strings.Builder
	fmt.Fprintf(&b, "active=%s", sc.Active)
	for _, c := range [...]engine.Color{engine.Red, engine.Black} {
		squares := sc.Stones[c]
		if len(squares) == 0 {
			continue
		}
		b.WriteString("; ")
		b.WriteString(c.String())
		b.WriteString(": ")
		for i, sq := range squares {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(sq.String())
		}
	}
	return b.String()
}
