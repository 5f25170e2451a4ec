// jsonfmt reformats JSON documents through the jsontext writer. It reads a
// stream of JSON values, replays the tokens, and emits them compact or
// indented with a chosen escaping policy. Concatenated top-level values are
// written one per line.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/antflydb/jsontext"
)

var version = "0.1.0"

var (
	indentWidth int
	useTabs     bool
	useCRLF     bool
	escapeMode  string
	outputPath  string
)

var rootCmd = &cobra.Command{
	Use:   "jsonfmt [file]",
	Short: "Reformat JSON with configurable indentation and escaping",
	Long: `jsonfmt rewrites JSON from a file or stdin to stdout or a file.

Examples:
  # Compact a document
  jsonfmt input.json

  # Pretty-print with 2-space indentation
  jsonfmt --indent 2 input.json

  # Tab indentation, ASCII-only output
  cat input.json | jsonfmt --indent 1 --tab --escape ascii
`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runFormat,
}

func init() {
	rootCmd.Flags().IntVarP(&indentWidth, "indent", "i", 0, "Spaces per indent level (0 = compact)")
	rootCmd.Flags().BoolVar(&useTabs, "tab", false, "Indent with tabs instead of spaces")
	rootCmd.Flags().BoolVar(&useCRLF, "crlf", false, "Use CRLF line endings in indented output")
	rootCmd.Flags().StringVarP(&escapeMode, "escape", "e", "default", "Escaping policy: default, html, ascii")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	opts, err := writerOptions()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	if err := reformat(in, bw, opts); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func writerOptions() ([]jsontext.Option, error) {
	var opts []jsontext.Option
	if indentWidth > 0 {
		opts = append(opts, jsontext.WithIndent(indentWidth))
		if useTabs {
			opts = append(opts, jsontext.WithIndentChar('\t'))
		}
		if useCRLF {
			opts = append(opts, jsontext.WithNewline(jsontext.NewlineCRLF))
		}
	}
	switch escapeMode {
	case "default":
	case "html":
		opts = append(opts, jsontext.WithEscaper(jsontext.HTMLEscaper))
	case "ascii":
		opts = append(opts, jsontext.WithEscaper(jsontext.ASCIIEscaper))
	default:
		return nil, fmt.Errorf("unknown escape policy %q", escapeMode)
	}
	return opts, nil
}

// reformat replays decoder tokens through a writer. The decoder guarantees
// well-formed input, so the replay cannot trip writer validation; any writer
// error here means the sink failed.
func reformat(in io.Reader, out io.Writer, opts []jsontext.Option) error {
	dec := json.NewDecoder(in)
	dec.UseNumber()

	sink := jsontext.NewStreamSink(out)
	w := jsontext.NewWriter(sink, opts...)

	// isObject mirrors the open containers; expectKey alternates between
	// names and values at object level.
	var isObject []bool
	expectKey := false

	finishValue := func() error {
		if len(isObject) > 0 {
			expectKey = isObject[len(isObject)-1]
			return nil
		}
		expectKey = false
		// A top-level value just completed: terminate the line and start a
		// fresh writer state for any following document.
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to flush output: %w", err)
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		w.Reset(sink)
		return nil
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			// Decoder.Token reports plain EOF for input truncated inside
			// an open container; treat that as a parse failure rather
			// than emitting a partial document.
			if len(isObject) > 0 {
				return fmt.Errorf("failed to parse input: %w", io.ErrUnexpectedEOF)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to parse input: %w", err)
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				err = w.BeginObject()
				isObject = append(isObject, true)
				expectKey = true
			case '[':
				err = w.BeginArray()
				isObject = append(isObject, false)
				expectKey = false
			case '}':
				err = w.EndObject()
				isObject = isObject[:len(isObject)-1]
			case ']':
				err = w.EndArray()
				isObject = isObject[:len(isObject)-1]
			}
			if err == nil && (t == '}' || t == ']') {
				err = finishValue()
			}
		case string:
			if expectKey {
				err = w.WritePropertyName(t)
				expectKey = false
			} else {
				if err = w.WriteString(t); err == nil {
					err = finishValue()
				}
			}
		case json.Number:
			if err = w.WriteRawNumber([]byte(t.String())); err == nil {
				err = finishValue()
			}
		case bool:
			if err = w.WriteBool(t); err == nil {
				err = finishValue()
			}
		case nil:
			if err = w.WriteNull(); err == nil {
				err = finishValue()
			}
		}
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
}
