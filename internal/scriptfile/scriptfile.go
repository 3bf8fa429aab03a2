// Package scriptfile loads tree scripts: TOML files listing the builder
// events that assemble a syntax tree. Scripts stand in for a parser on
// the CLI side, so every malformed script is an error, never a panic.
package scriptfile

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"verdant/green"
	"verdant/minijs"
)

// Piece describes one trivia piece of a scripted token.
type Piece struct {
	Kind string `toml:"kind"` // whitespace | comments
	Len  uint32 `toml:"len"`
}

// Event is one builder step. Op selects the step; the other fields apply
// to the ops that need them.
type Event struct {
	Op       string  `toml:"op"` // start | finish | token | missing
	Kind     string  `toml:"kind"`
	Text     string  `toml:"text"`
	Leading  []Piece `toml:"leading"`
	Trailing []Piece `toml:"trailing"`
}

// Script is a parsed tree script.
type Script struct {
	Events []Event `toml:"event"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	var s Script
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// validate checks the event stream before it reaches the builder, so
// script mistakes surface as errors instead of builder panics.
func (s *Script) validate() error {
	if len(s.Events) == 0 {
		return fmt.Errorf("script has no events")
	}
	depth := 0
	for i, ev := range s.Events {
		switch ev.Op {
		case "start":
			if _, err := kindByName(ev.Kind); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
			depth++
		case "finish":
			if depth == 0 {
				return fmt.Errorf("event %d: finish without matching start", i)
			}
			depth--
			if depth == 0 && i != len(s.Events)-1 {
				return fmt.Errorf("event %d: events after the root finished", i)
			}
		case "token":
			if depth == 0 {
				return fmt.Errorf("event %d: token outside of a node", i)
			}
			if _, err := kindByName(ev.Kind); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
			if err := checkTrivia(ev); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		case "missing":
			if depth == 0 {
				return fmt.Errorf("event %d: missing slot outside of a node", i)
			}
		default:
			return fmt.Errorf("event %d: unknown op %q", i, ev.Op)
		}
	}
	if depth != 0 {
		return fmt.Errorf("script ends with %d unfinished node(s)", depth)
	}
	return nil
}

func checkTrivia(ev Event) error {
	var total uint32
	for _, p := range append(append([]Piece(nil), ev.Leading...), ev.Trailing...) {
		switch p.Kind {
		case "whitespace", "comments":
		default:
			return fmt.Errorf("unknown trivia kind %q", p.Kind)
		}
		total += p.Len
	}
	if total > uint32(len(ev.Text)) {
		return fmt.Errorf("trivia covers %d bytes but token text %q has only %d", total, ev.Text, len(ev.Text))
	}
	return nil
}

func kindByName(name string) (minijs.SyntaxKind, error) {
	kind, ok := minijs.KindFromString(name)
	if !ok {
		return 0, fmt.Errorf("unknown kind %q", name)
	}
	return kind, nil
}

func toPieces(pieces []Piece) []green.TriviaPiece {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]green.TriviaPiece, len(pieces))
	for i, p := range pieces {
		if p.Kind == "comments" {
			out[i] = green.Comments(p.Len)
		} else {
			out[i] = green.Whitespace(p.Len)
		}
	}
	return out
}

// Build replays the validated events through a builder and returns the
// finished tree.
func (s *Script) Build() (minijs.Node, error) {
	b := minijs.NewBuilder()
	for i, ev := range s.Events {
		switch ev.Op {
		case "start":
			kind, err := kindByName(ev.Kind)
			if err != nil {
				return minijs.Node{}, fmt.Errorf("event %d: %w", i, err)
			}
			b.StartNode(kind)
		case "finish":
			b.FinishNode()
		case "token":
			kind, err := kindByName(ev.Kind)
			if err != nil {
				return minijs.Node{}, fmt.Errorf("event %d: %w", i, err)
			}
			b.TokenWithTrivia(kind, ev.Text, toPieces(ev.Leading), toPieces(ev.Trailing))
		case "missing":
			b.Missing()
		}
	}
	return b.Finish(), nil
}
