package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK       = 0
	exitFindings = 1
	exitUsage    = 2
)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	cwd    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cwd, _ := os.Getwd()
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr, getenv: os.Getenv, cwd: cwd}
	code := a.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func (a *app) run(ctx context.Context, args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "scan":
			return a.scan(ctx, args[1:])
		case "mask":
			return a.mask(args[1:])
		case "version", "--version", "-version":
			fmt.Fprintf(a.stdout, "tagaudit %s\n", resolveVersion())
			return exitOK
		case "help":
			fmt.Fprint(a.stdout, usageText)
			return exitOK
		}
	}
	return a.scan(ctx, args)
}

func resolveVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}

func (a *app) errorf(format string, args ...any) {
	fmt.Fprintf(a.stderr, "tagaudit: "+format+"\n", args...)
}

const usageText = `tagaudit checks that one markup tag is balanced in mixed markup/code files

Usage:
  tagaudit [scan] [flags] PATH...     audit files or directories ("-" reads stdin)
  tagaudit mask [flags] FILE          print the masked text the tokenizer sees
  tagaudit version                    print the version

Scan flags:
  -t, --tag NAME             tag to audit (default "div")
  -i, --ignore-case          match the tag name case-insensitively
      --brace-aware          ignore ">" inside {...} attribute expressions
      --lang NAME            force the language instead of detecting it
      --ext LIST             file extensions to scan in directories (repeatable, comma separated)
      --exclude GLOB         exclude paths matching GLOB (repeatable, comma separated)
      --no-default-excludes  also scan node_modules, dist, vendor and similar directories
  -j, --jobs N               parallel workers (1-64, default: number of CPUs)
      --max-file-bytes N     skip files larger than N bytes (0 = unlimited)
  -o, --output FORMAT        table|tsv|csv|markdown|json|ndjson|sarif|html (default "table")
      --fields LIST          columns for row formats: file,line,col,kind,depth,before,after,snippet
      --only-problems        list only excess closes and unclosed opens
      --snippet-width N      truncate table snippets to N cells (0 = no limit)
      --color MODE           auto|always|never (default "auto")
  -q, --quiet                hide event tables and balanced files
      --progress             force progress output on stderr
      --no-progress          disable progress output
      --open                 with --output html, write a temp file and open it in a browser
      --log-level LEVEL      trace|debug|info|warn|error|off (default "warn")
      --config PATH          config file (default: .tagaudit.{yaml,yml,toml,json} search)

Mask flags:
      --lang NAME            force the language instead of detecting it
      --diff                 print a unified diff between the original and masked text
      --context N            diff context lines (default 3)

Exit status: 0 when every file is balanced, 1 when findings exist, 2 on usage errors
or when no input could be read.
`
