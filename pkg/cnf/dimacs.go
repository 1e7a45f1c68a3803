package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// =============================================================================
// DIMACS Exchange Format
// =============================================================================

// The header line is written with fixed-width count fields so that appending
// a clause only requires rewriting the first line in place, never shifting
// the body. DIMACS parsers ignore the extra spaces.
//
//	p cnf <numVars:10> <numClauses:10>\n
const headerWidth = 10

// header renders the fixed-width DIMACS header line, including newline.
func header(numVars, numClauses int) string {
	return fmt.Sprintf("p cnf %*d %*d\n", headerWidth, numVars, headerWidth, numClauses)
}

// WriteTo serializes the formula in DIMACS CNF form.
func (f *Formula) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header(f.numVars, len(f.clauses))); err != nil {
		return err
	}
	for _, c := range f.clauses {
		if _, err := bw.WriteString(c.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the full formula to path, replacing any previous content.
func (f *Formula) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := f.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

// AppendFile adds c to the in-memory formula and to the persisted file
// without rewriting prior clause lines: the clause is appended and the
// header counts are patched at offset zero. The formula counts stay
// authoritative; nothing is read back from disk.
//
// If the clause is a duplicate in a deduplicating formula, neither memory
// nor file changes and AppendFile reports false.
func (f *Formula) AppendFile(path string, c Clause) (bool, error) {
	added, err := f.Add(c)
	if err != nil || !added {
		return added, err
	}

	out, err := os.OpenFile(path, os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer out.Close()

	if _, err := out.Seek(0, io.SeekEnd); err != nil {
		return false, fmt.Errorf("seek %s: %w", path, err)
	}
	if _, err := out.WriteString(c.String() + "\n"); err != nil {
		return false, fmt.Errorf("append %s: %w", path, err)
	}
	if _, err := out.WriteAt([]byte(header(f.numVars, len(f.clauses))), 0); err != nil {
		return false, fmt.Errorf("patch header %s: %w", path, err)
	}
	return true, nil
}

// =============================================================================
// Parsing
// =============================================================================

// Parse reads a DIMACS CNF problem. Comment lines ("c ...") are skipped.
// The declared clause count must match the number of clause lines.
func Parse(r io.Reader) (*Formula, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var f *Formula
	declared := 0
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}
		if strings.HasPrefix(text, "p") {
			if f != nil {
				return nil, fmt.Errorf("line %d: duplicate problem header", line)
			}
			fields := strings.Fields(text)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("line %d: malformed header %q", line, text)
			}
			numVars, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: variable count: %w", line, err)
			}
			declared, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("line %d: clause count: %w", line, err)
			}
			// Parsed clause sets keep duplicates: reproducing the file as
			// written matters more than shrinking it.
			f = NewFormula(numVars, WithDedup(false))
			continue
		}
		if f == nil {
			return nil, fmt.Errorf("line %d: clause before problem header", line)
		}
		clause, err := parseClauseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := f.Add(clause); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("missing problem header")
	}
	if f.Len() != declared {
		return nil, fmt.Errorf("header declares %d clauses, found %d", declared, f.Len())
	}
	return f, nil
}

// ParseFile reads a DIMACS CNF file from path.
func ParseFile(path string) (*Formula, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()
	return Parse(in)
}

func parseClauseLine(text string) (Clause, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return nil, fmt.Errorf("clause line missing zero terminator")
	}
	clause := make(Clause, 0, len(fields)-1)
	for _, tok := range fields[:len(fields)-1] {
		lit, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("literal %q: %w", tok, err)
		}
		if lit == 0 {
			return nil, ErrZeroLiteral
		}
		clause = append(clause, lit)
	}
	return clause, nil
}
