package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/depp/atlaspack/lib/bitmap"
)

// buildHash fingerprints the effective options and the raw bytes of every
// input image. A matching hash from a previous run means the outputs are
// already up to date.
func buildHash(opts *options, inputs []string) (uint64, error) {
	d := xxhash.New()
	fmt.Fprintf(d, "%v %v %v %v %v %v %v %d %d %s %s",
		opts.xml, opts.binary, opts.json,
		opts.premultiply, opts.trim, opts.unique, opts.rotate,
		opts.size, opts.pad, opts.heuristic, opts.extension)
	for _, input := range inputs {
		st, err := os.Stat(input)
		if err != nil {
			return 0, err
		}
		if !st.IsDir() {
			if err := hashFile(d, input); err != nil {
				return 0, err
			}
			continue
		}
		// WalkDir visits in lexical order, so the hash is deterministic.
		err = filepath.WalkDir(input, func(path string, de fs.DirEntry, err error) error {
			if err != nil || de.IsDir() {
				return err
			}
			return hashFile(d, path)
		})
		if err != nil {
			return 0, err
		}
	}
	return d.Sum64(), nil
}

func hashFile(w io.Writer, path string) error {
	if !bitmap.IsImageFile(path) {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
