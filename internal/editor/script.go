package editor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarenap/imgedit/internal/imaging"
)

const scriptHelp = `commands:
  open <path>                      load an image as the current one
  save <path>                      write the current image
  rotate <degrees>                 rotate clockwise (multiple of 90)
  downsample <hscale> <wscale>     block-average by integer factors
  patch <row> <col> <path> <#hex>  composite a file, skipping the hex color
  crop <y1> <x1> <y2> <x2>         keep the region (y1,x1)-(y2,x2)
  dump                             print the pixel grid
  size                             print current dimensions
  help                             show this text
  quit                             exit`

// RunScript reads editing commands line by line from r and executes them
// against the session, writing results to w.
//
// One command per line, whitespace-separated arguments. Unknown commands
// and malformed arguments produce an "error:" line and the loop continues;
// I/O failures from open/save/patch are reported the same way. Transform
// commands with invalid parameters follow the core's contract: the image
// is left unchanged and the command still acknowledges with "ok" (patch
// reports its pixel count instead).
func (s *Session) RunScript(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			break
		}

		if out, err := s.runCommand(cmd, args); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		} else if out != "" {
			fmt.Fprintln(w, out)
		} else if cmd != "dump" {
			fmt.Fprintln(w, "ok")
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

// runCommand dispatches one parsed command. It returns the text to print,
// empty for plain acknowledgments.
func (s *Session) runCommand(cmd string, args []string) (string, error) {
	switch cmd {
	case "open":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: open <path>")
		}
		return "", s.Open(args[0])

	case "save":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: save <path>")
		}
		return "", s.Save(args[0])

	case "rotate":
		n, err := intArgs(args, 1, "rotate <degrees>")
		if err != nil {
			return "", err
		}
		return "", s.Rotate(n[0])

	case "downsample":
		n, err := intArgs(args, 2, "downsample <hscale> <wscale>")
		if err != nil {
			return "", err
		}
		return "", s.DownSample(n[0], n[1])

	case "patch":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: patch <row> <col> <path> <#hex>")
		}
		n, err := intArgs(args[:2], 2, "patch <row> <col> <path> <#hex>")
		if err != nil {
			return "", err
		}
		transparent, err := imaging.ParseHex(args[3])
		if err != nil {
			return "", err
		}
		count, err := s.Patch(n[0], n[1], args[2], transparent)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("patched %d", count), nil

	case "crop":
		n, err := intArgs(args, 4, "crop <y1> <x1> <y2> <x2>")
		if err != nil {
			return "", err
		}
		return "", s.Crop(n[0], n[1], n[2], n[3])

	case "dump":
		var sb strings.Builder
		if err := s.Dump(&sb); err != nil {
			return "", err
		}
		return strings.TrimRight(sb.String(), "\n"), nil

	case "size":
		h, w, ok := s.Size()
		if !ok {
			return "", ErrNoImage
		}
		return fmt.Sprintf("%dx%d", h, w), nil

	case "help":
		return scriptHelp, nil

	default:
		return "", fmt.Errorf("unknown command: %s", cmd)
	}
}

// intArgs parses exactly want integer arguments, failing with the given
// usage string otherwise.
func intArgs(args []string, want int, usage string) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	out := make([]int, want)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("usage: %s", usage)
		}
		out[i] = v
	}
	return out, nil
}
