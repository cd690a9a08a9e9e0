package facts

import (
	"fmt"
	"unicode"

	"github.com/hogwash-io/hogwash/pkg/hogerrors"
	"github.com/hogwash-io/hogwash/pkg/relation"
)

// fillerWord fills a label slot without contributing a label, as in
// "GREEN things with WINGS can FLY".
const fillerWord = "things"

// token is a single whitespace-delimited word of a statement line, along
// with its 1-indexed column.
type token struct {
	value  string
	column uint64
}

// ParseStatement parses a single statement line into a Relation. The given
// line number is carried into any returned error.
func ParseStatement(line string, lineNumber uint64) (*relation.Relation, error) {
	p := &statementParser{
		source:     line,
		lineNumber: lineNumber,
		tokens:     splitStatement(line),
	}

	if len(p.tokens) == 0 {
		return nil, p.errorAtEndf("empty statement")
	}

	premises, err := p.premises()
	if err != nil {
		return nil, err
	}

	conclusions, err := p.conclusions()
	if err != nil {
		return nil, err
	}

	return relation.New(premises, conclusions), nil
}

// statementParser consumes the tokens of one statement line. Statements
// alternate between label slots and separator slots: any word may fill a
// label slot, while a separator slot accepts only the joiner words "with",
// "and" and "that can" or, on the premise side, one of the connectors
// "are", "have" and "can" marking the end of the group.
type statementParser struct {
	source     string
	lineNumber uint64
	tokens     []token
	index      int
}

func (p *statementParser) next() (token, bool) {
	if p.index >= len(p.tokens) {
		return token{}, false
	}

	tok := p.tokens[p.index]
	p.index++
	return tok, true
}

// premises consumes label groups up to and including a connector word.
// Running out of tokens before the connector is an error: every statement
// must name both sides of the implication.
func (p *statementParser) premises() ([]string, error) {
	var labels []string
	for {
		label, ok := p.next()
		if !ok {
			return nil, p.errorAtEndf("statement ended before a connector word")
		}
		if label.value != fillerWord {
			labels = append(labels, label.value)
		}

		sep, ok := p.next()
		if !ok {
			return nil, p.errorAtEndf("statement ended before a connector word")
		}

		switch sep.value {
		case "with", "and":
			continue
		case "that":
			if err := p.expectCan(); err != nil {
				return nil, err
			}
		case "are", "have", "can":
			return labels, nil
		default:
			return nil, p.errorAtf(sep, "unexpected word %q, expected a joiner or connector", sep.value)
		}
	}
}

// conclusions consumes label groups until the line ends. The group may be
// empty; connector words are not legal on this side.
func (p *statementParser) conclusions() ([]string, error) {
	var labels []string
	for {
		label, ok := p.next()
		if !ok {
			return labels, nil
		}
		if label.value != fillerWord {
			labels = append(labels, label.value)
		}

		sep, ok := p.next()
		if !ok {
			return labels, nil
		}

		switch sep.value {
		case "with", "and":
			continue
		case "that":
			if err := p.expectCan(); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorAtf(sep, "unexpected word %q, expected a joiner or the end of the statement", sep.value)
		}
	}
}

func (p *statementParser) expectCan() error {
	can, ok := p.next()
	if !ok {
		return p.errorAtEndf("%q must be followed by %q", "that", "can")
	}
	if can.value != "can" {
		return p.errorAtf(can, "expected %q after %q, found %q", "can", "that", can.value)
	}
	return nil
}

func (p *statementParser) errorAtf(tok token, format string, args ...any) error {
	return hogerrors.NewWithSourceError(fmt.Errorf(format, args...), p.source, p.lineNumber, tok.column)
}

func (p *statementParser) errorAtEndf(format string, args ...any) error {
	return hogerrors.NewWithSourceError(fmt.Errorf(format, args...), p.source, p.lineNumber, uint64(len(p.source))+1)
}

// splitStatement tokenizes a line on Unicode whitespace, recording each
// token's 1-indexed column.
func splitStatement(line string) []token {
	var tokens []token

	start := -1
	for i, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, token{value: line[start:i], column: uint64(start) + 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{value: line[start:], column: uint64(start) + 1})
	}

	return tokens
}
