package fieldrec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoFocal reports a snapshot that names no focal individual.
var ErrNoFocal = errors.New("snapshot has no focal individual id")

// Decode reads a JSON snapshot and checks that it names a focal individual.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.FocalID() == "" {
		return nil, ErrNoFocal
	}
	if snap.Source.PID == "" {
		snap.Source.PID = snap.FocalID()
	}
	return &snap, nil
}

// Load decodes the JSON snapshot stored at path.
func Load(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

// Encode writes snap as indented JSON.
func Encode(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
