package highscore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestFileSubmit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	f, err := NewFile(path, 3, 16)
	if err != nil {
		t.Fatal(err)
	}

	for i, score := range []int{5, 9, 7} {
		if _, err := f.Submit("p", score); err != nil {
			t.Fatalf("Submit #%d failed: %v", i, err)
		}
	}

	ok, err := f.Qualifies(5)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("5 ties the lowest entry and should not qualify")
	}

	rank, err := f.Submit("new", 8)
	if err != nil {
		t.Fatal(err)
	}
	if rank != 1 {
		t.Errorf("rank = %d, expected 1", rank)
	}

	table, err := f.Table()
	if err != nil {
		t.Fatal(err)
	}
	scores := []int{}
	for _, e := range table.Entries() {
		scores = append(scores, e.Score)
	}
	if len(scores) != 3 || scores[0] != 9 || scores[1] != 8 || scores[2] != 7 {
		t.Errorf("scores = %v, expected [9 8 7]", scores)
	}
}

func TestFileReportsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte("alice\t4\nbroken line\nbob\tx\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := NewFile(path, 5, 16)
	if err != nil {
		t.Fatal(err)
	}
	var lines []int
	f.OnMalformed = func(fe *FormatError) {
		lines = append(lines, fe.Line)
	}

	table, err := f.Table()
	if err != nil {
		t.Fatalf("Table() should not fail on malformed lines: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", table.Len())
	}
	if len(lines) != 2 || lines[0] != 2 || lines[1] != 3 {
		t.Errorf("malformed lines = %v, expected [2 3]", lines)
	}

	// Submitting rewrites the file without the bad lines
	if _, err := f.Submit("carol", 10); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "carol\t10\nalice\t4\n" {
		t.Errorf("file = %q", data)
	}
}

func TestFileSubmitAfterOverlongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	data := "alice\t10\n" + strings.Repeat("x", 70000) + "\t5\nbob\t7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := NewFile(path, 5, 16)
	if err != nil {
		t.Fatal(err)
	}

	table, err := f.Table()
	if err != nil {
		t.Fatalf("Table() should skip the long line: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", table.Len())
	}

	rank, err := f.Submit("carol", 3)
	if err != nil {
		t.Fatal(err)
	}
	if rank != 2 {
		t.Errorf("rank = %d, expected 2", rank)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != "alice\t10\nbob\t7\ncarol\t3\n" {
		t.Errorf("file = %q", written)
	}
}

func TestFileConcurrentSubmit(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "scores.txt"), 5, 16)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := f.Submit("p", score); err != nil {
				t.Errorf("Submit(%d) failed: %v", score, err)
			}
		}(i)
	}
	wg.Wait()

	table, err := f.Table()
	if err != nil {
		t.Fatal(err)
	}
	entries := table.Entries()
	if len(entries) != 5 || entries[0].Score != 20 || entries[4].Score != 16 {
		t.Errorf("entries = %+v, expected top five of 1..20", entries)
	}
}
