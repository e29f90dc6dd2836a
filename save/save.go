package save

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/rustyeddy/tycoon/game"
)

// Version is bumped whenever Snapshot's layout changes incompatibly.
const Version = 1

// Snapshot is the on-disk save format: a small envelope around the
// full game state, serialized as JSON and xz-compressed.
type Snapshot struct {
	Version int         `json:"version"`
	SavedAt string      `json:"saved_at"`
	State   *game.State `json:"state"`
}

// Write saves the game state to path, atomically via a temp file.
func Write(path string, state *game.State, savedAt string) error {
	snap := Snapshot{
		Version: Version,
		SavedAt: savedAt,
		State:   state,
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}

	w, err := xz.NewWriter(f)
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("open compressor: %w", err)
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(snap); err != nil {
		w.Close()
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode save: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("close compressor: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close save file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace save file: %w", err)
	}
	return nil
}

// Read loads a game state from path. Saves from a different format
// version are rejected rather than mis-read.
func Read(path string) (*game.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open decompressor: %w", err)
	}

	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}
	if snap.Version != Version {
		return nil, fmt.Errorf("save format version %d not supported (want %d)", snap.Version, Version)
	}
	if snap.State == nil {
		return nil, fmt.Errorf("save contains no game state")
	}
	return snap.State, nil
}
