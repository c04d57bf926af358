package highscore

import (
	"errors"
	"sync"
)

// File is a high-score table on disk shared by concurrent games, such as
// several SSH sessions. Every operation re-reads the file so entries from
// other processes are not lost.
type File struct {
	mu         sync.Mutex
	path       string
	maxEntries int
	maxName    int

	// OnMalformed, if set, receives each line that was skipped while loading.
	OnMalformed func(err *FormatError)
}

// NewFile creates a handle for the table at path. A leading ~ is expanded.
func NewFile(path string, maxEntries, maxName int) (*File, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return &File{
		path:       expanded,
		maxEntries: maxEntries,
		maxName:    maxName,
	}, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// Table loads the current table. Malformed lines are skipped and reported
// to OnMalformed; only I/O failures are returned.
func (f *File) Table() (*Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.load()
}

func (f *File) load() (*Table, error) {
	t, err := Load(f.path, f.maxEntries, f.maxName)
	if err == nil {
		return t, nil
	}

	// Split format problems from real failures
	var ioErrs []error
	for _, e := range unjoin(err) {
		var fe *FormatError
		if errors.As(e, &fe) {
			if f.OnMalformed != nil {
				f.OnMalformed(fe)
			}
			continue
		}
		ioErrs = append(ioErrs, e)
	}
	return t, errors.Join(ioErrs...)
}

// Qualifies reports whether score would enter the current table.
func (f *File) Qualifies(score int) (bool, error) {
	t, err := f.Table()
	if err != nil {
		return false, err
	}
	return t.Qualifies(score), nil
}

// Submit inserts an entry and saves the table. It returns the 0-based rank,
// or -1 if the score no longer makes the table.
func (f *File) Submit(name string, score int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.load()
	if err != nil {
		return -1, err
	}

	rank := t.Insert(name, score)
	if rank < 0 {
		return -1, nil
	}
	if err := t.Save(f.path); err != nil {
		return -1, err
	}
	return rank, nil
}

// unjoin flattens an error built by errors.Join.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
