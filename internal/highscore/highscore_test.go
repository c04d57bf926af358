package highscore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Entry
		wantErr bool
	}{
		{"valid", "alice\t42", Entry{"alice", 42}, false},
		{"name with spaces", "bob the builder\t7", Entry{"bob the builder", 7}, false},
		{"empty name", "\t3", Entry{"", 3}, false},
		{"no tab", "alice 42", Entry{}, true},
		{"not a number", "alice\tlots", Entry{}, true},
		{"negative", "alice\t-1", Entry{}, true},
		{"extra field", "alice\t1\t2", Entry{}, true},
		{"empty score", "alice\t", Entry{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLine(%q) expected error", tt.line)
				}
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("error %v should match ErrMalformed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine(%q) failed: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, expected %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestReadSkipsMalformedLines(t *testing.T) {
	input := "carol\t30\ngarbage\n\nalice\t50\nbob\tNaN\ndave\t10\n"

	table, err := Read(strings.NewReader(input), 5, 16)
	if err == nil {
		t.Fatal("Read() should report malformed lines")
	}

	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v should contain a *FormatError", err)
	}
	if fe.Line != 2 {
		t.Errorf("first malformed line = %d, expected 2", fe.Line)
	}

	want := []Entry{{"alice", 50}, {"carol", 30}, {"dave", 10}}
	if got := table.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %+v, expected %+v", got, want)
	}
}

func TestReadSkipsOverlongLine(t *testing.T) {
	data := "alice\t10\n" + strings.Repeat("x", 70000) + "\t5\nbob\t7\n"

	table, err := Read(strings.NewReader(data), 5, 16)

	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Read() error = %v, expected a *FormatError", err)
	}
	if fe.Line != 2 || fe.Reason != "line too long" {
		t.Errorf("FormatError = line %d %q, expected line 2 \"line too long\"", fe.Line, fe.Reason)
	}
	if len(fe.Text) > 64 {
		t.Errorf("FormatError text should be shortened, got %d bytes", len(fe.Text))
	}

	want := []Entry{{"alice", 10}, {"bob", 7}}
	if got := table.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, expected %v", got, want)
	}
}

func TestReadLastLineWithoutNewline(t *testing.T) {
	table, err := Read(strings.NewReader("alice\t10\nbob\t7"), 5, 16)
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", table.Len())
	}
}

func TestReadTruncatesToMaxEntries(t *testing.T) {
	input := "a\t1\nb\t2\nc\t3\nd\t4\ne\t5\nf\t6\ng\t7\n"

	table, err := Read(strings.NewReader(input), 5, 16)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}

	want := []Entry{{"g", 7}, {"f", 6}, {"e", 5}, {"d", 4}, {"c", 3}}
	if got := table.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %+v, expected %+v", got, want)
	}
}

func TestQualifies(t *testing.T) {
	table := NewTable(3, 16)

	if table.Qualifies(0) {
		t.Error("zero should never qualify")
	}
	if !table.Qualifies(1) {
		t.Error("any positive score qualifies for a table with room")
	}

	table.Insert("a", 30)
	table.Insert("b", 20)
	table.Insert("c", 10)

	if table.Qualifies(10) {
		t.Error("tying the lowest entry of a full table should not qualify")
	}
	if !table.Qualifies(11) {
		t.Error("beating the lowest entry should qualify")
	}
}

func TestInsertOrdering(t *testing.T) {
	table := NewTable(4, 16)

	ranks := []struct {
		name  string
		score int
		want  int
	}{
		{"first", 10, 0},
		{"second", 20, 0},
		{"tie", 10, 2}, // after the existing 10
		{"low", 5, 3},
		{"top", 99, 0},
		{"nope", 1, -1}, // table full and too low
	}
	for _, r := range ranks {
		if got := table.Insert(r.name, r.score); got != r.want {
			t.Errorf("Insert(%q, %d) rank = %d, expected %d", r.name, r.score, got, r.want)
		}
	}

	want := []Entry{{"top", 99}, {"second", 20}, {"first", 10}, {"tie", 10}}
	if got := table.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %+v, expected %+v", got, want)
	}
}

func TestSanitizeName(t *testing.T) {
	table := NewTable(5, 8)

	tests := []struct {
		in, want string
	}{
		{"alice", "alice"},
		{"  bob  ", "bob"},
		{"tab\there", "tabhere"},
		{"new\nline", "newline"},
		{"averyveryverylongname", "averyver"},
		{"", DefaultName},
		{"\t\n", DefaultName},
		{"ñandú ñandú", "ñandú ña"},
	}

	for _, tt := range tests {
		if got := table.SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteFormat(t *testing.T) {
	table := NewTable(5, 16)
	table.Insert("alice", 5)
	table.Insert("bob", 12)

	var buf bytes.Buffer
	if err := table.Write(&buf); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	want := "bob\t12\nalice\t5\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, expected %q", buf.String(), want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscores.txt")

	table := NewTable(5, 16)
	table.Insert("alice", 5)
	table.Insert("bob", 12)

	if err := table.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path, 5, 16)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Entries(), table.Entries()) {
		t.Errorf("loaded %+v, expected %+v", loaded.Entries(), table.Entries())
	}

	// No temp files are left behind
	files, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("directory has %d files, expected only the table", len(files))
	}
}

func TestLoadMissingFile(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "absent.txt"), 5, 16)
	if err != nil {
		t.Fatalf("Load() of a missing file failed: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", table.Len())
	}
}
