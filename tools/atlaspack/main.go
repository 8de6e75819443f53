// Atlaspack packs images into texture atlases.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/depp/atlaspack/lib/atlas"
	"github.com/depp/atlaspack/lib/bitmap"
	"github.com/depp/atlaspack/lib/rectpack"
)

type options struct {
	defaults    bool
	xml         bool
	binary      bool
	json        bool
	premultiply bool
	trim        bool
	force       bool
	unique      bool
	rotate      bool
	verbose     int
	size        int32
	pad         int32
	heuristic   string
	extension   string
	config      string
}

var opts options

var cmdRoot = cobra.Command{
	Use:           "atlaspack <output> <input>...",
	Short:         "Atlaspack packs images into texture atlases.",
	Args:          cobra.MinimumNArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPack(cmd, args[0], args[1:])
	},
}

func init() {
	f := cmdRoot.Flags()
	f.BoolVarP(&opts.defaults, "default", "d", false, "use default settings (-x -p -t -u)")
	f.BoolVarP(&opts.xml, "xml", "x", false, "save the atlas data as an .xml file")
	f.BoolVarP(&opts.binary, "binary", "b", false, "save the atlas data as a .bin file")
	f.BoolVarP(&opts.json, "json", "j", false, "save the atlas data as a .json file")
	f.BoolVarP(&opts.premultiply, "premultiply", "p", false, "premultiply pixels by their alpha channel")
	f.BoolVarP(&opts.trim, "trim", "t", false, "trim excess transparency off the images")
	f.BoolVarP(&opts.force, "force", "f", false, "ignore caching, forcing a repack")
	f.BoolVarP(&opts.unique, "unique", "u", false, "remove duplicate images from the atlas")
	f.BoolVarP(&opts.rotate, "rotate", "r", false, "allow rotating images 90 degrees when packing")
	f.CountVarP(&opts.verbose, "verbose", "v", "print more as the packer works")
	f.Int32VarP(&opts.size, "size", "s", 4096, "max atlas size (power of two, 64-4096)")
	f.Int32VarP(&opts.pad, "pad", "P", 1, "padding between images (0-16)")
	f.StringVarP(&opts.heuristic, "heuristic", "H", "BestShortSideFit", "image packing heuristic")
	f.StringVarP(&opts.extension, "extension", "e", "png", "image format for saved atlas images")
	f.StringVarP(&opts.config, "config", "c", "", "read options from a TOML project `file`")
}

func logLevel(verbose int) logrus.Level {
	switch verbose {
	case 0:
		return logrus.WarnLevel
	case 1:
		return logrus.InfoLevel
	case 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func validSize(size int32) bool {
	for s := int32(64); s <= 4096; s *= 2 {
		if size == s {
			return true
		}
	}
	return false
}

// loadImage reads one image file into the queue. Non-image files are
// skipped.
func loadImage(path string, queue []*bitmap.Bitmap) ([]*bitmap.Bitmap, int64, error) {
	if !bitmap.IsImageFile(path) {
		logrus.Debugf("file %s is not an image, skipping", path)
		return queue, 0, nil
	}
	logrus.Infof("reading file %s", path)
	st, err := os.Stat(path)
	if err != nil {
		return queue, 0, err
	}
	im, err := bitmap.Read(path)
	if err != nil {
		return queue, 0, err
	}
	name := path[:len(path)-len(filepath.Ext(path))]
	b := bitmap.New(im, filepath.ToSlash(name), opts.premultiply, opts.trim)
	return append(queue, b), st.Size(), nil
}

// loadInputs collects images from the input files and directories,
// recursively.
func loadInputs(inputs []string) ([]*bitmap.Bitmap, int64, error) {
	var queue []*bitmap.Bitmap
	var total int64
	for _, input := range inputs {
		st, err := os.Stat(input)
		if err != nil {
			return nil, 0, err
		}
		if !st.IsDir() {
			var sz int64
			if queue, sz, err = loadImage(input, queue); err != nil {
				return nil, 0, err
			}
			total += sz
			continue
		}
		logrus.Infof("reading directory %s", input)
		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			var sz int64
			queue, sz, err = loadImage(path, queue)
			total += sz
			return err
		})
		if err != nil {
			return nil, 0, err
		}
	}
	return queue, total, nil
}

// removeStale deletes outputs from a previous run so a failed pack cannot
// leave a mix of old and new files.
func removeStale(outDir, outName string) error {
	for _, ext := range []string{".hash", ".bin", ".xml", ".json"} {
		path := filepath.Join(outDir, outName+ext)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	stale, err := filepath.Glob(filepath.Join(outDir, outName+"*."+opts.extension))
	if err != nil {
		return err
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}

func runPack(cmd *cobra.Command, output string, inputs []string) error {
	if opts.config != "" {
		if err := applyConfig(cmd.Flags(), &opts, opts.config); err != nil {
			return err
		}
	}
	if opts.defaults {
		opts.xml = true
		opts.premultiply = true
		opts.trim = true
		opts.unique = true
	}
	logrus.SetLevel(logLevel(opts.verbose))

	if opts.pad < 0 || opts.pad > 16 {
		return fmt.Errorf("invalid padding value: %d", opts.pad)
	}
	if !validSize(opts.size) {
		return fmt.Errorf("invalid atlas size: %d", opts.size)
	}
	method, err := rectpack.ParseHeuristic(opts.heuristic)
	if err != nil {
		return err
	}

	outDir := filepath.Dir(output)
	outName := filepath.Base(output)
	hashPath := filepath.Join(outDir, outName+".hash")

	hash, err := buildHash(&opts, inputs)
	if err != nil {
		return err
	}
	hashStr := fmt.Sprintf("%016x", hash)
	if old, err := os.ReadFile(hashPath); err == nil && !opts.force && string(old) == hashStr {
		logrus.Infof("atlas is unchanged: %s", outName)
		return nil
	}
	if err := removeStale(outDir, outName); err != nil {
		return err
	}

	logrus.Info("loading images...")
	queue, totalSize, err := loadInputs(inputs)
	if err != nil {
		return err
	}
	prt := message.NewPrinter(language.English)
	logrus.Info(prt.Sprintf("loaded %d images, %d bytes", len(queue), totalSize))

	atlas.SortByArea(queue)
	bins, err := atlas.PackAll(queue, atlas.Options{
		Size:   opts.size,
		Pad:    opts.pad,
		Unique: opts.unique,
		Rotate: opts.rotate,
		Method: method,
	})
	if err != nil {
		return err
	}

	for idx, bin := range bins {
		path := filepath.Join(outDir, fmt.Sprintf("%s%d.%s", outName, idx, opts.extension))
		logrus.Infof("writing image %s (%dx%d, %d images)", path, bin.Width, bin.Height, len(bin.Images))
		if err := bin.Render().Write(path); err != nil {
			return err
		}
	}

	meta := atlas.Build(outName, bins)
	writers := []struct {
		enabled bool
		ext     string
		write   func(*os.File) error
	}{
		{opts.binary, ".bin", func(fp *os.File) error { return meta.WriteBinary(fp) }},
		{opts.xml, ".xml", func(fp *os.File) error { return meta.WriteXML(fp) }},
		{opts.json, ".json", func(fp *os.File) error { return meta.WriteJSON(fp) }},
	}
	for _, w := range writers {
		if !w.enabled {
			continue
		}
		path := filepath.Join(outDir, outName+w.ext)
		logrus.Infof("writing %s", path)
		fp, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := w.write(fp); err != nil {
			fp.Close()
			return err
		}
		if err := fp.Close(); err != nil {
			return err
		}
	}

	return os.WriteFile(hashPath, []byte(hashStr), 0666)
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
