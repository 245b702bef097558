// wing-stats prints planform statistics for one or more JSON wing
// descriptions, followed by a table of chordwise resolutions and the
// resulting STL triangle counts and file sizes, so that a resolution
// can be picked for a target file size.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gmlewis/wings/config"
	"github.com/gmlewis/wings/profile"
	"github.com/gmlewis/wings/stl"
	"github.com/gmlewis/wings/wing"
	"github.com/spf13/cobra"
)

var (
	resolutions []int
	maxSize     int64
)

var rootCmd = &cobra.Command{
	Use:   "wing-stats [flags] wing.json...",
	Short: "Report planform statistics and STL sizes per chordwise resolution",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpDir, err := os.MkdirTemp("", "wing-stats")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmpDir)

		var rows []string
		for _, arg := range args {
			r, err := stats(arg, tmpDir)
			if err != nil {
				return fmt.Errorf("%v: %w", arg, err)
			}
			rows = append(rows, r...)
		}

		fmt.Printf("%v\n", strings.Join(rows, "\n"))
		log.Printf("Done.")
		return nil
	},
}

func init() {
	f := rootCmd.Flags()
	f.IntSliceVar(&resolutions, "res", []int{20, 50, 100, 200, 400}, "Chordwise resolutions (nchord) to try")
	f.Int64Var(&maxSize, "max", 50000000, "Stop trying resolutions once the STL file size exceeds max")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func stats(arg, tmpDir string) ([]string, error) {
	w, err := config.Load(arg)
	if err != nil {
		return nil, err
	}
	pl, af, err := w.Build()
	if err != nil {
		return nil, err
	}

	log.Printf("%v: area=%v, mean chord=%v, aspect ratio=%v", arg, profile.Area(pl), profile.MeanChord(pl), profile.AspectRatio(pl))

	outFile := filepath.Join(tmpDir, "outfile-stats.stl")
	var rows []string
	for _, res := range resolutions {
		opts := w.Options()
		opts.NChord = res
		pts, err := wing.Generate(pl, af, &opts)
		if err != nil {
			return nil, fmt.Errorf("nchord=%v: %w", res, err)
		}
		err = stl.Export(outFile, pts, res, &stl.Options{Scale: w.ScaleFactor(), Header: w.Header(), DropDegenerate: true})
		if err != nil {
			return nil, fmt.Errorf("nchord=%v: %w", res, err)
		}

		s, err := stl.ReadFile(outFile)
		if err != nil {
			return nil, err
		}
		fi, err := os.Stat(outFile)
		if err != nil {
			return nil, err
		}
		log.Printf("Found: nchord=%v nspan=%v - %v triangles, size: %v", res, opts.NSpan, len(s.Tris), fi.Size())
		rows = append(rows, fmt.Sprintf("%v\t%v\t%v\t%v", arg, res, len(s.Tris), fi.Size()))

		if fi.Size() >= maxSize {
			break
		}
	}
	return rows, nil
}
