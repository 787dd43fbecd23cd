// SPDX-License-Identifier: MIT
/*
Package bank loads, sweeps and saves sound banks.

A bank is a directory of mono 16-bit WAV files, one file per sample entry.
Entries keep the directory's sorted file order so repeated sweeps touch
samples deterministically and produce byte-identical output.
*/
package bank

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sndbank/internal/log"
	"sndbank/internal/pcm"
)

// Entry is one sample slot in a bank: the wave plus the file it came from.
type Entry struct {
	Name string
	Wave *pcm.Buffer
}

// Bank is an ordered collection of sample entries.
type Bank struct {
	Dir     string
	Entries []*Entry
}

// Load reads every .wav file under dir into a Bank. Files that fail to
// decode (wrong channel count, bad loop metadata, truncated data) are
// skipped with a warning rather than failing the whole bank.
func Load(dir string) (*Bank, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read bank dir: %w", err)
	}

	b := &Bank{Dir: dir}
	for _, de := range dirEntries {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".wav") {
			continue
		}
		wave, err := ReadFile(filepath.Join(dir, de.Name()))
		if err != nil {
			log.Warnf("skipping %s: %v", de.Name(), err)
			continue
		}
		b.Entries = append(b.Entries, &Entry{Name: de.Name(), Wave: wave})
	}

	return b, nil
}

// Lookup returns the entry with the given file name, or nil.
func (b *Bank) Lookup(name string) *Entry {
	for _, e := range b.Entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Save writes every entry into dir, creating it if needed. An empty dir
// writes back into the bank's own directory.
func (b *Bank) Save(dir string) error {
	if dir == "" {
		dir = b.Dir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, e := range b.Entries {
		if err := WriteFile(filepath.Join(dir, e.Name), e.Wave); err != nil {
			return fmt.Errorf("write %s: %w", e.Name, err)
		}
	}
	return nil
}
