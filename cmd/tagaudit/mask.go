package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phyten/tagaudit/internal/detect"
	"github.com/phyten/tagaudit/internal/engine"
	"github.com/phyten/tagaudit/internal/maskdiff"
)

type maskArgs struct {
	file     string
	lang     string
	diff     bool
	context  int
	showHelp bool
}

func parseMaskArgs(args []string) (*maskArgs, error) {
	fs := flag.NewFlagSet("tagaudit mask", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	ma := &maskArgs{}
	fs.StringVar(&ma.lang, "lang", "", "")
	fs.BoolVar(&ma.diff, "diff", false, "")
	fs.IntVar(&ma.context, "context", maskdiff.DefaultContext, "")

	var rest []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				ma.showHelp = true
				return ma, nil
			}
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		rest = append(rest, args[0])
		args = args[1:]
	}
	if len(rest) != 1 {
		return nil, errors.New("mask needs exactly one FILE (use - for stdin)")
	}
	if ma.context < 0 {
		return nil, errors.New("--context must be >= 0")
	}
	if ma.lang != "" && !detect.KnownLanguage(ma.lang) {
		return nil, fmt.Errorf("invalid --lang: %s", ma.lang)
	}
	ma.file = rest[0]
	return ma, nil
}

func (a *app) mask(args []string) int {
	ma, err := parseMaskArgs(args)
	if err != nil {
		a.errorf("%v", err)
		return exitUsage
	}
	if ma.showHelp {
		fmt.Fprint(a.stdout, usageText)
		return exitOK
	}

	name := ma.file
	var data []byte
	if name == engine.StdinPath {
		name = engine.StdinName
		data, err = io.ReadAll(a.stdin)
	} else {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(a.cwd, path)
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		a.errorf("%v", err)
		return exitUsage
	}

	lang, res := engine.Mask(name, data, ma.lang)
	for _, w := range res.Warnings {
		a.errorf("%s: warning: %s", name, w.String())
	}
	if !ma.diff {
		fmt.Fprint(a.stdout, res.Text)
		return exitOK
	}
	diff, err := maskdiff.Unified(fmt.Sprintf("%s (%s)", name, lang), string(data), res.Text, ma.context)
	if err != nil {
		a.errorf("%v", err)
		return exitUsage
	}
	fmt.Fprint(a.stdout, diff)
	return exitOK
}
