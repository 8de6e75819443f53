package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// A configFile mirrors the command-line options in a TOML project file.
type configFile struct {
	XML         *bool  `toml:"xml"`
	Binary      *bool  `toml:"binary"`
	JSON        *bool  `toml:"json"`
	Premultiply *bool  `toml:"premultiply"`
	Trim        *bool  `toml:"trim"`
	Unique      *bool  `toml:"unique"`
	Rotate      *bool  `toml:"rotate"`
	Size        *int32 `toml:"size"`
	Pad         *int32 `toml:"pad"`
	Heuristic   string `toml:"heuristic"`
	Extension   string `toml:"extension"`
}

// applyConfig reads a TOML project file into the options. Flags given
// explicitly on the command line take precedence over the file.
func applyConfig(flags *pflag.FlagSet, opts *options, path string) error {
	var cf configFile
	meta, err := toml.DecodeFile(path, &cf)
	if err != nil {
		return fmt.Errorf("could not read config %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key in config %q: %s", path, undecoded[0])
	}

	setBool := func(name string, v *bool, dst *bool) {
		if v != nil && !flags.Changed(name) {
			*dst = *v
		}
	}
	setBool("xml", cf.XML, &opts.xml)
	setBool("binary", cf.Binary, &opts.binary)
	setBool("json", cf.JSON, &opts.json)
	setBool("premultiply", cf.Premultiply, &opts.premultiply)
	setBool("trim", cf.Trim, &opts.trim)
	setBool("unique", cf.Unique, &opts.unique)
	setBool("rotate", cf.Rotate, &opts.rotate)
	if cf.Size != nil && !flags.Changed("size") {
		opts.size = *cf.Size
	}
	if cf.Pad != nil && !flags.Changed("pad") {
		opts.pad = *cf.Pad
	}
	if cf.Heuristic != "" && !flags.Changed("heuristic") {
		opts.heuristic = cf.Heuristic
	}
	if cf.Extension != "" && !flags.Changed("extension") {
		opts.extension = cf.Extension
	}
	return nil
}
