package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/prettyfmt/prettyfmt/internal/brand"
	"github.com/prettyfmt/prettyfmt/internal/prettyprint"
)

const usage = `usage: prettyfmt [options] [file]

Pretty-prints a JSON or YAML document (from file or stdin) to the terminal.

options:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errOut}).With().Timestamp().Logger()

	flags := flag.NewFlagSet("prettyfmt", flag.ContinueOnError)
	flags.SetOutput(errOut)
	flags.Usage = func() {
		fmt.Fprint(errOut, usage)
		flags.PrintDefaults()
	}

	var (
		format   = flags.String("format", "auto", "input format: json, yaml or auto (by file extension)")
		maxDepth = flags.Int("max-depth", prettyprint.DefaultMaxDepth, "maximum nesting depth")
		maxProps = flags.Int("max-props", prettyprint.DefaultMaxPropertyNumber, "maximum number of properties per value")
		width    = flags.Int("width", prettyprint.DefaultLineWidth, "switch to multi-line layout beyond this width")
		tree     = flags.Bool("tree", false, "tree-drawing layout")
		compact  = flags.Bool("compact", false, "force single-line layout")
		sortKeys = flags.String("sort", "none", "property order: none, lex or natural")
		themeArg = flags.String("theme", "", "YAML theme file overriding part styles")
		noColor  = flags.Bool("no-color", false, "disable styling even on a terminal")
	)

	if err := flags.Parse(args); err != nil {
		return 2
	}

	input, name, err := openInput(flags.Args())
	if err != nil {
		logger.Error().Err(err).Msg("failed to open input")
		return 1
	}
	defer input.Close()

	data, err := io.ReadAll(input)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return 1
	}

	value, err := decode(data, *format, name)
	if err != nil {
		logger.Error().Err(err).Str("format", *format).Msg("failed to decode input")
		return 1
	}

	opts, err := printerOptions(*maxDepth, *maxProps, *width, *tree, *compact, *sortKeys)
	if err != nil {
		logger.Error().Err(err).Msg("invalid options")
		return 2
	}

	if styles, ok := chooseStyles(out, *noColor, *themeArg, logger); ok {
		opts = append(opts, prettyprint.WithStyleMap(styles))
	}

	printer, err := prettyprint.NewPrinter(opts...)
	if err != nil {
		logger.Error().Err(err).Msg("invalid printer configuration")
		return 2
	}

	s, err := printer.StringifyToString(value)
	if err != nil {
		logger.Error().Err(err).Msg("failed to pretty-print value")
		return 1
	}

	fmt.Fprintln(out, s)
	return 0
}

func openInput(args []string) (io.ReadCloser, string, error) {
	switch len(args) {
	case 0:
		return os.Stdin, "", nil
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", err
		}
		return f, args[0], nil
	default:
		return nil, "", fmt.Errorf("expected at most one input file, got %d", len(args))
	}
}

func decode(data []byte, format, name string) (any, error) {
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	var value any
	switch format {
	case "json":
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return value, nil
}

func printerOptions(maxDepth, maxProps, width int, tree, compact bool, sortKeys string) ([]prettyprint.Option, error) {
	depth, err := brand.ParsePositiveInt(maxDepth)
	if err != nil {
		return nil, fmt.Errorf("max-depth: %w", err)
	}
	props, err := brand.ParsePositiveInt(maxProps)
	if err != nil {
		return nil, fmt.Errorf("max-props: %w", err)
	}

	opts := []prettyprint.Option{
		prettyprint.WithMaxDepth(depth.Int()),
		prettyprint.WithMaxPropertyNumber(props.Int()),
	}

	switch {
	case tree && compact:
		return nil, fmt.Errorf("-tree and -compact are mutually exclusive")
	case tree:
		opts = append(opts,
			prettyprint.WithRecordFormatter(prettyprint.TreeifyRecordFormatter()),
			prettyprint.WithArrayFormatter(prettyprint.TreeifyRecordFormatter()),
		)
	case compact:
		opts = append(opts,
			prettyprint.WithRecordFormatter(prettyprint.SingleLineRecordFormatter()),
			prettyprint.WithArrayFormatter(prettyprint.SingleLineRecordFormatter()),
		)
	default:
		limits := prettyprint.ThresholdLimits{MaxTotalWidth: width}
		opts = append(opts,
			prettyprint.WithRecordFormatter(prettyprint.ThresholdRecordFormatter(limits)),
			prettyprint.WithArrayFormatter(prettyprint.ThresholdRecordFormatter(limits)),
		)
	}

	switch sortKeys {
	case "none":
	case "lex":
		opts = append(opts, prettyprint.WithSortOrder(prettyprint.SortKeysLexicographic))
	case "natural":
		opts = append(opts, prettyprint.WithSortOrder(prettyprint.SortKeysNatural))
	default:
		return nil, fmt.Errorf("unknown sort order %q", sortKeys)
	}

	return opts, nil
}

func chooseStyles(out io.Writer, noColor bool, themePath string, logger zerolog.Logger) (prettyprint.StyleMap, bool) {
	if noColor {
		return nil, false
	}
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}

	var styles prettyprint.StyleMap
	if termenv.HasDarkBackground() {
		styles = prettyprint.DefaultDarkStyles()
	} else {
		styles = prettyprint.DefaultLightStyles()
	}

	if themePath != "" {
		overrides, err := loadTheme(themePath)
		if err != nil {
			logger.Warn().Err(err).Str("theme", themePath).Msg("ignoring unreadable theme")
		} else {
			for part, styler := range overrides {
				styles[part] = styler
			}
		}
	}
	return styles, true
}
