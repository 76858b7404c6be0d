// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Long and short spellings per option; only explicitly set flags override config

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/mockcase/internal/config"
)

type cliArgs struct {
	strategy      string
	nth           int
	probability   float64
	blacklist     blacklistFlag
	fromClipboard bool
	toClipboard   bool
	seed          uint64
	normalize     bool
	configPath    string
	verbose       bool
	quiet         bool
	version       bool

	// set holds the canonical names of flags given on the command line.
	set   map[string]bool
	input []string
}

// blacklistFlag collects repeated -b values; every rune of every value counts.
type blacklistFlag []string

func (b *blacklistFlag) String() string { return strings.Join(*b, ",") }

func (b *blacklistFlag) Set(v string) error {
	*b = append(*b, v)
	return nil
}

// aliases maps alternate spellings to the canonical flag name.
var aliases = map[string]string{
	"s":              "strategy",
	"n":              "nth",
	"p":              "probability",
	"b":              "blacklist",
	"from_clipboard": "from-clipboard",
	"to_clipboard":   "to-clipboard",
	"v":              "verbose",
	"q":              "quiet",
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("mockcase", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: mockcase [flags] [text ...]\n\n")
		fmt.Fprintf(fs.Output(), "Mocks text from arguments, stdin or the clipboard.\n\n")
		fs.PrintDefaults()
	}

	for _, name := range []string{"strategy", "s"} {
		fs.StringVar(&args.strategy, name, "step", "Mocking strategy: step (nth_char) or probability (random)")
	}
	for _, name := range []string{"nth", "n"} {
		fs.IntVar(&args.nth, name, 2, "Upper-case every nth character (step strategy)")
	}
	for _, name := range []string{"probability", "p"} {
		fs.Float64Var(&args.probability, name, 0.5, "Chance of upper-casing each character, 0.0-1.0 (probability strategy)")
	}
	for _, name := range []string{"blacklist", "b"} {
		fs.Var(&args.blacklist, name, "Characters never upper-cased (repeatable)")
	}
	for _, name := range []string{"from-clipboard", "from_clipboard"} {
		fs.BoolVar(&args.fromClipboard, name, false, "Read input from the clipboard")
	}
	for _, name := range []string{"to-clipboard", "to_clipboard"} {
		fs.BoolVar(&args.toClipboard, name, false, "Copy output to the clipboard")
	}
	fs.Uint64Var(&args.seed, "seed", 0, "Seed for reproducible probability output")
	fs.BoolVar(&args.normalize, "normalize", false, "Apply Unicode NFC normalization before mocking")
	fs.StringVar(&args.configPath, "config", "", "Read settings from this YAML file instead of the default locations")
	for _, name := range []string{"verbose", "v"} {
		fs.BoolVar(&args.verbose, name, false, "Enable debug logging")
	}
	for _, name := range []string{"quiet", "q"} {
		fs.BoolVar(&args.quiet, name, false, "Only log errors")
	}
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}

	args.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if canonical, ok := aliases[name]; ok {
			name = canonical
		}
		args.set[name] = true
	})
	args.input = fs.Args()
	return args, nil
}

// settings returns the config layer made of explicitly set flags.
func (a cliArgs) settings() *config.Settings {
	s := &config.Settings{}
	if a.set["strategy"] {
		s.Strategy = a.strategy
	}
	if a.set["nth"] {
		n := a.nth
		s.Nth = &n
	}
	if a.set["probability"] {
		p := a.probability
		s.Probability = &p
	}
	if a.set["blacklist"] {
		s.Blacklist = config.Blacklist(a.blacklist)
	}
	if a.set["seed"] {
		seed := a.seed
		s.Seed = &seed
	}
	if a.set["normalize"] {
		normalize := a.normalize
		s.Normalize = &normalize
	}
	return s
}
