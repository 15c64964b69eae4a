package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarenap/imgedit/internal/editor"
	"github.com/sarenap/imgedit/internal/imaging"
	"github.com/sarenap/imgedit/internal/logging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("imgedit %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		printUsage()
		return
	}

	logger := logging.GetLogger()
	defer logger.Sync()

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		logger.Fatalf("%v", err)
	}
}

func printUsage() {
	fmt.Println("imgedit - pixel-grid image editor")
	fmt.Println()
	fmt.Println("Usage: imgedit <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  rotate      rotate an image clockwise by a multiple of 90 degrees")
	fmt.Println("  downsample  shrink an image by integer block-averaging factors")
	fmt.Println("  patch       composite one image onto another with a transparent color")
	fmt.Println("  crop        keep a rectangular region of an image")
	fmt.Println("  dump        print an image's pixel grid as (r, g, b) triples")
	fmt.Println("  info        print an image file's metadata")
	fmt.Println("  script      read editing commands from stdin")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMGEDIT_LOG_LEVEL=debug    Enable debug logging")
}

func run(cmd string, args []string) error {
	switch cmd {
	case "rotate":
		return runRotate(args)
	case "downsample":
		return runDownSample(args)
	case "patch":
		return runPatch(args)
	case "crop":
		return runCrop(args)
	case "dump":
		return runDump(args)
	case "info":
		return runInfo(args)
	case "script":
		return runScript()
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func runRotate(args []string) error {
	fs := flag.NewFlagSet("rotate", flag.ExitOnError)
	in := fs.String("in", "", "input image path")
	out := fs.String("out", "", "output image path")
	degrees := fs.Int("degrees", 90, "clockwise rotation, non-negative multiple of 90")
	fs.Parse(args)

	return transform(*in, *out, func(b *imaging.Buffer) *imaging.Buffer {
		return imaging.Rotate(b, *degrees)
	})
}

func runDownSample(args []string) error {
	fs := flag.NewFlagSet("downsample", flag.ExitOnError)
	in := fs.String("in", "", "input image path")
	out := fs.String("out", "", "output image path")
	hScale := fs.Int("hscale", 1, "height scale factor")
	wScale := fs.Int("wscale", 1, "width scale factor")
	fs.Parse(args)

	return transform(*in, *out, func(b *imaging.Buffer) *imaging.Buffer {
		return imaging.DownSample(b, *hScale, *wScale)
	})
}

func runCrop(args []string) error {
	fs := flag.NewFlagSet("crop", flag.ExitOnError)
	in := fs.String("in", "", "input image path")
	out := fs.String("out", "", "output image path")
	y1 := fs.Int("y1", 0, "top edge (inclusive)")
	x1 := fs.Int("x1", 0, "left edge (inclusive)")
	y2 := fs.Int("y2", 0, "bottom edge (exclusive)")
	x2 := fs.Int("x2", 0, "right edge (exclusive)")
	fs.Parse(args)

	return transform(*in, *out, func(b *imaging.Buffer) *imaging.Buffer {
		return imaging.Crop(b, *y1, *x1, *y2, *x2)
	})
}

func runPatch(args []string) error {
	fs := flag.NewFlagSet("patch", flag.ExitOnError)
	in := fs.String("in", "", "destination image path")
	patchPath := fs.String("patch", "", "patch image path")
	out := fs.String("out", "", "output image path")
	row := fs.Int("row", 0, "destination row of the patch's top-left corner")
	col := fs.Int("col", 0, "destination column of the patch's top-left corner")
	transparent := fs.String("transparent", "#000000", "color to skip, as #RRGGBB")
	fs.Parse(args)

	if *in == "" || *patchPath == "" || *out == "" {
		return fmt.Errorf("patch requires -in, -patch and -out")
	}

	trans, err := imaging.ParseHex(*transparent)
	if err != nil {
		return err
	}

	dst, err := imaging.Open(*in)
	if err != nil {
		return err
	}
	src, err := imaging.Open(*patchPath)
	if err != nil {
		return err
	}

	count := imaging.Patch(dst, *row, *col, src, trans)
	fmt.Println(count)

	return imaging.Save(dst, *out)
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	in := fs.String("in", "", "input image path")
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("dump requires -in")
	}
	b, err := imaging.Open(*in)
	if err != nil {
		return err
	}
	return imaging.Dump(os.Stdout, b)
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	in := fs.String("in", "", "input image path")
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("info requires -in")
	}
	info, err := imaging.Info(*in)
	if err != nil {
		return err
	}
	fmt.Printf("size:   %dx%d\n", info.Width, info.Height)
	fmt.Printf("format: %s\n", info.Format)
	fmt.Printf("alpha:  %t\n", info.HasAlpha)
	fmt.Printf("bytes:  %d\n", info.FileSizeBytes)
	return nil
}

func runScript() error {
	return editor.NewSession().RunScript(os.Stdin, os.Stdout)
}

// transform runs the load -> op -> save pipeline shared by the pure
// transform commands.
func transform(in, out string, op func(*imaging.Buffer) *imaging.Buffer) error {
	if in == "" || out == "" {
		return fmt.Errorf("command requires -in and -out")
	}
	b, err := imaging.Open(in)
	if err != nil {
		return err
	}
	return imaging.Save(op(b), out)
}
