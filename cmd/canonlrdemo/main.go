// Command canonlrdemo is a small interactive driver over canonlr's bundled
// example grammars, grounded on cmd/tqi/main.go's flag wiring and
// exit-code pattern.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/dekarrin/canonlr/internal/demogrammars"
	"github.com/dekarrin/canonlr/internal/tokenreader"
	"github.com/dekarrin/canonlr/lrparse"
	"github.com/dekarrin/canonlr/lrtable"
	"github.com/dekarrin/canonlr/symbol"
)

const (
	ExitSuccess  = 0
	ExitBadUsage = 1
	ExitBuild    = 2
	ExitRuntime  = 3
)

// config holds the settings cmd/canonlrdemo accepts both from flags and
// from an optional ~/.canonlrdemo.toml; flags explicitly passed on the
// command line always win over the file.
type config struct {
	Trace bool `toml:"trace"`
	Width int  `toml:"width"`
}

var (
	flagGrammar = pflag.StringP("grammar", "g", "parens", "bundled grammar to use: parens, list, listpair, arith, dangling")
	flagTrace   = pflag.BoolP("trace", "t", false, "enable the shift/reduce/accept trace and conflict diagnostics")
	flagWidth   = pflag.IntP("width", "w", 0, "ACTION/GOTO table print width (0 = use config/default)")
	flagTable   = pflag.Bool("table", false, "print the ACTION/GOTO table before parsing")
	flagDirect  = pflag.Bool("direct", false, "read input lines directly instead of via an interactive readline session")
)

func main() {
	returnCode := ExitSuccess
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "canonlrdemo: %v\n", r)
			returnCode = ExitRuntime
		}
		os.Exit(returnCode)
	}()

	pflag.Parse()

	cfg := loadConfig()
	if !pflag.CommandLine.Changed("trace") {
		*flagTrace = cfg.Trace
	}
	if *flagWidth == 0 {
		*flagWidth = cfg.Width
	}
	if *flagWidth == 0 {
		*flagWidth = 80
	}

	named, ok := demogrammars.Lookup(*flagGrammar)
	if !ok {
		fmt.Fprintf(os.Stderr, "canonlrdemo: unknown grammar %q\n", *flagGrammar)
		os.Exit(ExitBadUsage)
		return
	}

	var diagnostics []lrtable.Diagnostic
	var sink func(lrtable.Diagnostic)
	if *flagTrace {
		sink = func(d lrtable.Diagnostic) { diagnostics = append(diagnostics, d) }
	}

	tables, err := lrtable.Build(named.Grammar, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "canonlrdemo: building tables for %q: %v\n", named.Name, err)
		os.Exit(ExitBuild)
		return
	}
	for _, d := range diagnostics {
		fmt.Fprintf(os.Stderr, "canonlrdemo: diagnostic: %s\n", d)
	}

	if *flagTable {
		fmt.Println(named.Grammar.String())
		fmt.Println(tables.StringWidth(*flagWidth))
	}

	classify := func(tok string) symbol.Symbol {
		s, ok := named.Classify(tok)
		if !ok {
			panic(fmt.Sprintf("unrecognized token %q for grammar %q", tok, named.Name))
		}
		return s
	}

	parser := lrparse.New(named.Grammar, tables, classify)
	runREPL(parser, named)
}

func loadConfig() config {
	var cfg config
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(home, ".canonlrdemo.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "canonlrdemo: ignoring malformed %s: %v\n", path, err)
		return config{}
	}
	return cfg
}

func runREPL(parser *lrparse.Parser[string], named demogrammars.Named) {
	reader, closeReader := newReader()
	defer closeReader()

	tbl := named.Grammar.Table()

	for {
		line, err := reader.ReadLine()
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "canonlrdemo: %v\n", err)
			return
		}

		corr := uuid.New().String()[:8]
		if *flagTrace {
			parser.SetTraceListener(func(s string) {
				fmt.Printf("[%s] %s\n", corr, s)
			})
		}

		toks := append(strings.Fields(line), "$")
		tree, err := parser.Parse(toks)
		if err != nil {
			fmt.Printf("[%s] parse error: %v\n", corr, err)
			continue
		}
		fmt.Print(tree.String(tbl))
	}
}

// newReader picks an InteractiveReader unless --direct was passed or
// readline fails to attach (e.g. stdin is not a TTY), in which case it
// falls back to a DirectReader over stdin — the same dual-reader split as
// tunaq's internal/input.
func newReader() (tokenreader.Reader, func()) {
	if !*flagDirect {
		ir, err := tokenreader.NewInteractiveReader("canonlr> ")
		if err == nil {
			return ir, func() { ir.Close() }
		}
	}
	dr := tokenreader.NewDirectReader(os.Stdin)
	return dr, func() { dr.Close() }
}
