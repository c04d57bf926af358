// Package highscore reads and writes the high-score table file.
//
// The file is line oriented: one "name<TAB>score" entry per line, ordered
// by descending score and capped at a fixed number of entries. Lines that
// cannot be parsed are reported as *FormatError and skipped.
package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// DefaultName replaces names that are empty after sanitizing.
const DefaultName = "Player"

// maxLineLength caps a line's length in bytes; longer lines are malformed.
const maxLineLength = 4096

// ErrMalformed is matched by every *FormatError.
var ErrMalformed = errors.New("malformed high-score entry")

// FormatError describes a line that could not be parsed.
type FormatError struct {
	Line   int // 1-based line number, 0 when parsing a single line
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("highscore: line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("highscore: %s: %q", e.Reason, e.Text)
}

// Unwrap lets errors.Is(err, ErrMalformed) match.
func (e *FormatError) Unwrap() error {
	return ErrMalformed
}

// Entry is one row of the table.
type Entry struct {
	Name  string
	Score int
}

// String formats the entry as a file line without the newline.
func (e Entry) String() string {
	return e.Name + "\t" + strconv.Itoa(e.Score)
}

// ParseLine parses a single "name<TAB>score" line.
func ParseLine(line string) (Entry, error) {
	name, score, ok := strings.Cut(line, "\t")
	if !ok {
		return Entry{}, &FormatError{Text: line, Reason: "missing tab separator"}
	}
	if strings.Contains(score, "\t") {
		return Entry{}, &FormatError{Text: line, Reason: "too many fields"}
	}

	n, err := strconv.Atoi(strings.TrimSpace(score))
	if err != nil {
		return Entry{}, &FormatError{Text: line, Reason: "score is not an integer"}
	}
	if n < 0 {
		return Entry{}, &FormatError{Text: line, Reason: "negative score"}
	}

	return Entry{Name: name, Score: n}, nil
}

// Table is a bounded, descending high-score list.
type Table struct {
	entries    []Entry
	maxEntries int
	maxName    int
}

// NewTable creates an empty table.
// maxName <= 0 means names are not truncated.
func NewTable(maxEntries, maxName int) *Table {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Table{
		entries:    make([]Entry, 0, maxEntries),
		maxEntries: maxEntries,
		maxName:    maxName,
	}
}

// Entries returns a copy of the table rows, best first.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.entries)
}

// Qualifies reports whether score would earn a place in the table.
// A score must beat the lowest entry of a full table; ties do not bump it.
func (t *Table) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	if len(t.entries) < t.maxEntries {
		return true
	}
	return score > t.entries[len(t.entries)-1].Score
}

// Insert adds an entry and returns its 0-based rank.
// Equal scores keep their existing order, so the newcomer goes after them.
// It returns -1 if the score did not make the table.
func (t *Table) Insert(name string, score int) int {
	if score < 0 {
		return -1
	}

	pos := len(t.entries)
	for i, e := range t.entries {
		if score > e.Score {
			pos = i
			break
		}
	}
	if pos >= t.maxEntries {
		return -1
	}

	t.entries = append(t.entries, Entry{})
	copy(t.entries[pos+1:], t.entries[pos:])
	t.entries[pos] = Entry{Name: t.SanitizeName(name), Score: score}

	if len(t.entries) > t.maxEntries {
		t.entries = t.entries[:t.maxEntries]
	}
	return pos
}

// SanitizeName strips control characters (tabs and newlines included),
// trims surrounding space and truncates to the table's name limit.
func (t *Table) SanitizeName(name string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	clean = strings.TrimSpace(clean)

	if t.maxName > 0 {
		if runes := []rune(clean); len(runes) > t.maxName {
			clean = strings.TrimSpace(string(runes[:t.maxName]))
		}
	}
	if clean == "" {
		return DefaultName
	}
	return clean
}

// Read loads entries from r into a new table. Malformed lines are skipped;
// their *FormatError values are joined into the returned error alongside
// the usable table. Blank lines are ignored.
func Read(r io.Reader, maxEntries, maxName int) (*Table, error) {
	t := NewTable(maxEntries, maxName)

	var errs []error
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if raw != "" {
			lineNo++
			if err := t.readLine(raw, lineNo); err != nil {
				errs = append(errs, err)
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			errs = append(errs, fmt.Errorf("highscore: read: %w", readErr))
			return t, errors.Join(errs...)
		}
	}

	return t, errors.Join(errs...)
}

// readLine parses one raw line into the table. Overlong lines are
// reported without being parsed.
func (t *Table) readLine(raw string, lineNo int) error {
	line := strings.TrimRight(raw, "\r\n")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	if len(line) > maxLineLength {
		return &FormatError{Line: lineNo, Text: line[:32] + "...", Reason: "line too long"}
	}

	e, err := ParseLine(line)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Line = lineNo
		}
		return err
	}
	t.Insert(e.Name, e.Score)
	return nil
}

// Load reads the table at path. A missing file yields an empty table.
func Load(path string, maxEntries, maxName int) (*Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewTable(maxEntries, maxName), nil
	}
	if err != nil {
		return NewTable(maxEntries, maxName), fmt.Errorf("highscore: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, maxEntries, maxName)
}

// Write writes the table in file format.
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range t.entries {
		if _, err := bw.WriteString(e.String() + "\n"); err != nil {
			return fmt.Errorf("highscore: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("highscore: write: %w", err)
	}
	return nil
}

// Save writes the table to path through a temporary file and a rename,
// so a failed save leaves the previous file intact.
func (t *Table) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*")
	if err != nil {
		return fmt.Errorf("highscore: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := t.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: replace %s: %w", path, err)
	}
	return nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("highscore: get home dir: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}
