// wing-stl generates wing surface meshes from one or more JSON wing
// descriptions.
//
// For each description it writes a watertight binary STL file, a
// plain-text point file, a ZIP holding both, or any combination.
//
// Example:
//
//	wing-stl --xyz --nchord 120 examples/tapered.json
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gmlewis/wings/config"
	"github.com/gmlewis/wings/stl"
	"github.com/gmlewis/wings/wing"
	"github.com/gmlewis/wings/xyz"
	"github.com/gmlewis/wings/zipper"
	"github.com/spf13/cobra"
)

var (
	writeSTL       bool
	writeXYZ       bool
	writeZip       bool
	nchord         int
	nspan          int
	scale          float64
	delim          string
	dropDegenerate bool
)

var rootCmd = &cobra.Command{
	Use:   "wing-stl [flags] wing.json...",
	Short: "Generate watertight STL wing meshes from JSON wing descriptions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !writeSTL && !writeXYZ && !writeZip {
			log.Printf("--stl=false and no --xyz or --zip: validating wing descriptions only.")
		}
		for _, arg := range args {
			if err := process(arg); err != nil {
				return fmt.Errorf("%v: %w", arg, err)
			}
		}
		log.Println("Done.")
		return nil
	},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&writeSTL, "stl", true, "Write a binary STL file per wing")
	f.BoolVar(&writeXYZ, "xyz", false, "Write a plain-text point file per wing")
	f.BoolVar(&writeZip, "zip", false, "Write a ZIP file per wing holding both the STL and the point file")
	f.IntVar(&nchord, "nchord", 0, "Points per section loop, even (overrides the wing description; default 100)")
	f.IntVar(&nspan, "nspan", 0, "Span stations (overrides the wing description; default 50)")
	f.Float64Var(&scale, "scale", 0, "Output scale factor (overrides the wing description; default 1)")
	f.StringVar(&delim, "delim", xyz.DefaultDelim, "Coordinate delimiter for --xyz output")
	f.BoolVar(&dropDegenerate, "drop-degenerate", true, "Skip zero-area triangles instead of failing (sections with a sharp leading edge produce them at the seam)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func process(arg string) error {
	log.Printf("Processing wing description %q...", arg)
	w, err := config.Load(arg)
	if err != nil {
		return err
	}
	if nchord != 0 {
		w.NChord = nchord
	}
	if nspan != 0 {
		w.NSpan = nspan
	}
	if scale != 0 {
		w.Scale = scale
	}

	pl, af, err := w.Build()
	if err != nil {
		return err
	}
	opts := w.Options()
	log.Printf("Sampling %v chordwise points x %v span stations over xi=[%v,%v]", opts.NChord, opts.NSpan, opts.Xi0, opts.Xi1)
	pts, err := wing.Generate(pl, af, &opts)
	if err != nil {
		return fmt.Errorf("wing.Generate: %w", err)
	}

	baseName := strings.TrimSuffix(arg, ".json")

	stlOpts := &stl.Options{
		Scale:          w.ScaleFactor(),
		Header:         w.Header(),
		DropDegenerate: dropDegenerate,
	}

	if writeSTL {
		filename := stl.Filename(baseName)
		log.Printf("Writing: %v", filename)
		if err := stl.Export(filename, pts, opts.NChord, stlOpts); err != nil {
			return fmt.Errorf("stl.Export: %w", err)
		}
	}

	if writeXYZ {
		filename := baseName + ".xyz"
		log.Printf("Writing: %v", filename)
		if err := xyz.Write(filename, pts, delim); err != nil {
			return fmt.Errorf("xyz.Write: %w", err)
		}
	}

	if writeZip {
		filename := baseName + ".zip"
		log.Printf("Writing: %v", filename)
		if err := zipper.Write(filename, pts, opts.NChord, &zipper.Options{STL: stlOpts, Delim: delim}); err != nil {
			return fmt.Errorf("zipper.Write: %w", err)
		}
	}

	return nil
}
