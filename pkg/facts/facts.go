// Package facts loads relation statements from their textual form.
//
// Input starts with a line holding the number of statements, followed by one
// statement per line. A statement names a premise label group and a
// conclusion label group separated by one of the connector words "are",
// "have" or "can". Within a group, "with" and "and" join further labels, the
// word "things" fills a label slot without naming a label, and the pair
// "that can" continues the group past a clause boundary.
package facts

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	safecast "github.com/ccoveille/go-safecast/v2"

	"github.com/hogwash-io/hogwash/pkg/hogerrors"
	"github.com/hogwash-io/hogwash/pkg/relation"
)

// Load reads a relation collection from r.
//
// The first line must hold the number of statements that follow. Exactly
// that many statement lines are consumed; any input beyond them is ignored.
func Load(r io.Reader) ([]*relation.Relation, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read relation count: %w", err)
		}
		return nil, hogerrors.NewWithSourceError(fmt.Errorf("missing relation count"), "", 1, 1)
	}

	countLine := scanner.Text()
	count, err := strconv.ParseUint(strings.TrimSpace(countLine), 10, 64)
	if err != nil {
		return nil, hogerrors.NewWithSourceError(
			fmt.Errorf("invalid relation count %q", strings.TrimSpace(countLine)),
			countLine,
			1,
			1,
		)
	}

	capacity, err := safecast.Convert[int](count)
	if err != nil {
		return nil, hogerrors.NewWithSourceError(
			fmt.Errorf("relation count %d is too large: %w", count, err),
			countLine,
			1,
			1,
		)
	}

	relations := make([]*relation.Relation, 0, capacity)
	for lineNumber := uint64(2); uint64(len(relations)) < count; lineNumber++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read statement on line %d: %w", lineNumber, err)
			}
			return nil, hogerrors.NewWithSourceError(
				fmt.Errorf("expected %d statements, found only %d", count, len(relations)),
				"",
				lineNumber,
				1,
			)
		}

		parsed, err := ParseStatement(scanner.Text(), lineNumber)
		if err != nil {
			return nil, err
		}

		relations = append(relations, parsed)
	}

	hogerrors.DebugAssertf(func() bool { return uint64(len(relations)) == count },
		"loaded %d relations, expected %d", len(relations), count)

	return relations, nil
}
