package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
)

const (
	snapshotMagic   = "NMLX"
	snapshotVersion = 1
)

// ErrSnapshotVersion is returned for snapshots written by an incompatible version
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// snapshot is the on-disk layout following the magic bytes
type snapshot struct {
	Version int             `msgpack:"v"`
	Words   int             `msgpack:"n"`
	Entries []lexicon.Entry `msgpack:"e"`
}

// SaveSnapshot writes the sorted lexicon so later runs can skip parsing and sorting the word list
func SaveSnapshot(filename string, ix *lexicon.Index) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", filename, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := writeSnapshot(w, ix); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", filename, err)
	}

	log.Debugf("Saved snapshot of %d words to %s", ix.Len(), filename)
	return nil
}

// LoadSnapshot reads a lexicon written by SaveSnapshot
func LoadSnapshot(filename string) (*lexicon.Index, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", filename, err)
	}
	defer file.Close()

	ix, err := readSnapshot(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", filename, err)
	}

	log.Debugf("Loaded snapshot of %d words from %s", ix.Len(), filename)
	return ix, nil
}

func writeSnapshot(w io.Writer, ix *lexicon.Index) error {
	if _, err := io.WriteString(w, snapshotMagic); err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(snapshot{
		Version: snapshotVersion,
		Words:   ix.Len(),
		Entries: ix.Entries(),
	})
}

func readSnapshot(r io.Reader) (*lexicon.Index, error) {
	header := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if string(header) != snapshotMagic {
		return nil, fmt.Errorf("bad magic %q", header)
	}

	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode entries: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}
	if snap.Words != len(snap.Entries) {
		return nil, fmt.Errorf("snapshot declares %d words but holds %d", snap.Words, len(snap.Entries))
	}
	return lexicon.FromEntries(snap.Entries)
}
