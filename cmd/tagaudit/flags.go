package main

import (
	"errors"
	"flag"
	"io"
	"strings"

	"github.com/phyten/tagaudit/internal/config"
	engineopts "github.com/phyten/tagaudit/internal/engine/opts"
)

// multiFlag collects repeated flag values; commas are split later by SplitMulti.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

var shortAliases = map[string]string{
	"t": "tag",
	"i": "ignore-case",
	"j": "jobs",
	"o": "output",
	"q": "quiet",
}

// scanArgs holds the parsed command line. Engine and UI layers only carry the
// flags the user actually passed so they can be merged over file and env config.
type scanArgs struct {
	engine     config.EngineConfig
	ui         config.UIConfig
	paths      []string
	configPath string
	progress   bool
	noProgress bool
	open       bool
	showHelp   bool
}

func parseScanArgs(args []string) (*scanArgs, error) {
	fs := flag.NewFlagSet("tagaudit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tagName, lang, output, fields, color, logLevel string
		ignoreCase, braceAware, noDefaultExcludes      bool
		onlyProblems, quiet                            bool
		jobs, maxFileBytes, snippetWidth               int
		exts, excludes                                 multiFlag
	)
	sa := &scanArgs{}

	fs.StringVar(&tagName, "tag", "", "")
	fs.StringVar(&tagName, "t", "", "")
	fs.BoolVar(&ignoreCase, "ignore-case", false, "")
	fs.BoolVar(&ignoreCase, "i", false, "")
	fs.BoolVar(&braceAware, "brace-aware", false, "")
	fs.StringVar(&lang, "lang", "", "")
	fs.Var(&exts, "ext", "")
	fs.Var(&excludes, "exclude", "")
	fs.BoolVar(&noDefaultExcludes, "no-default-excludes", false, "")
	fs.IntVar(&jobs, "jobs", 0, "")
	fs.IntVar(&jobs, "j", 0, "")
	fs.IntVar(&maxFileBytes, "max-file-bytes", 0, "")
	fs.StringVar(&output, "output", "", "")
	fs.StringVar(&output, "o", "", "")
	fs.StringVar(&fields, "fields", "", "")
	fs.BoolVar(&onlyProblems, "only-problems", false, "")
	fs.IntVar(&snippetWidth, "snippet-width", 0, "")
	fs.StringVar(&color, "color", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&quiet, "q", false, "")
	fs.BoolVar(&sa.progress, "progress", false, "")
	fs.BoolVar(&sa.noProgress, "no-progress", false, "")
	fs.BoolVar(&sa.open, "open", false, "")
	fs.StringVar(&logLevel, "log-level", "", "")
	fs.StringVar(&sa.configPath, "config", "", "")

	head, tail := splitAtTerminator(args)
	for len(head) > 0 {
		if err := fs.Parse(head); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				sa.showHelp = true
				return sa, nil
			}
			return nil, err
		}
		head = fs.Args()
		if len(head) > 0 {
			sa.paths = append(sa.paths, head[0])
			head = head[1:]
		}
	}
	sa.paths = append(sa.paths, tail...)

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := shortAliases[name]; ok {
			name = long
		}
		set[name] = true
	})

	if set["tag"] {
		sa.engine.Tag = &tagName
	}
	if set["ignore-case"] {
		sa.engine.IgnoreCase = &ignoreCase
	}
	if set["brace-aware"] {
		sa.engine.BraceAware = &braceAware
	}
	if set["lang"] {
		sa.engine.Lang = &lang
	}
	if set["ext"] {
		list := engineopts.SplitMulti(exts)
		sa.engine.Extensions = &list
	}
	if set["exclude"] {
		list := engineopts.SplitMulti(excludes)
		sa.engine.Excludes = &list
	}
	if set["no-default-excludes"] {
		sa.engine.NoDefaultExcludes = &noDefaultExcludes
	}
	if set["jobs"] {
		sa.engine.Jobs = &jobs
	}
	if set["max-file-bytes"] {
		sa.engine.MaxFileBytes = &maxFileBytes
	}
	if set["output"] {
		sa.engine.Output = &output
	}
	if set["color"] {
		sa.engine.Color = &color
	}
	if set["log-level"] {
		sa.engine.LogLevel = &logLevel
	}
	if set["fields"] {
		sa.ui.Fields = &fields
	}
	if set["only-problems"] {
		sa.ui.OnlyProblems = &onlyProblems
	}
	if set["snippet-width"] {
		sa.ui.SnippetWidth = &snippetWidth
	}
	if set["quiet"] {
		sa.ui.Quiet = &quiet
	}
	return sa, nil
}

// splitAtTerminator separates everything after the first "--" so it is never
// parsed as a flag, even when it starts with "-".
func splitAtTerminator(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}
