package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"

	"github.com/phyten/tagaudit/internal/config"
	"github.com/phyten/tagaudit/internal/engine"
	engineopts "github.com/phyten/tagaudit/internal/engine/opts"
	"github.com/phyten/tagaudit/internal/logging"
	"github.com/phyten/tagaudit/internal/output"
	"github.com/phyten/tagaudit/internal/progress"
	"github.com/phyten/tagaudit/internal/termcolor"
)

// openBrowser is replaced in tests.
var openBrowser = browser.OpenFile

type scanConfig struct {
	opts   engine.Options
	engine config.EngineSettings
	ui     config.UISettings
	source string
}

// resolveScanConfig layers defaults, the config file, TAGAUDIT_* variables and
// flags, in that order.
func (a *app) resolveScanConfig(sa *scanArgs) (*scanConfig, error) {
	defaults := engineopts.Defaults()
	engineBase := config.EngineSettingsFromOptions(defaults)
	uiBase := config.DefaultUISettings()

	explicit := sa.configPath
	if explicit == "" {
		explicit = a.getenv(config.EnvPrefix + "CONFIG")
	}
	startDir := a.cwd
	if len(sa.paths) > 0 && sa.paths[0] != engine.StdinPath {
		startDir = searchDir(a.cwd, sa.paths[0])
	}
	path, where, err := config.Find(startDir, explicit, a.getenv("XDG_CONFIG_HOME"), a.getenv("HOME"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var fileCfg config.Config
	if path != "" {
		fileCfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
		where = where + ":" + path
	}

	envCfg, err := config.FromEnv(a.getenv)
	if err != nil {
		return nil, err
	}

	engineSettings := config.MergeEngine(engineBase, fileCfg.Engine, envCfg.Engine, sa.engine)
	engineSettings, err = config.NormalizeEngine(engineSettings)
	if err != nil {
		return nil, err
	}
	uiSettings, err := config.NormalizeUI(config.MergeUI(uiBase, fileCfg.UI, envCfg.UI, sa.ui))
	if err != nil {
		return nil, err
	}

	opts := defaults
	engineSettings.ApplyToOptions(&opts)
	opts.Dir = a.cwd
	if len(sa.paths) > 0 {
		opts.Paths = append([]string(nil), sa.paths...)
	}
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		return nil, err
	}
	return &scanConfig{opts: opts, engine: engineSettings, ui: uiSettings, source: where}, nil
}

// searchDir is the directory config discovery starts from for the first path argument.
func searchDir(cwd, p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(cwd, p)
	}
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return p
	}
	return filepath.Dir(p)
}

func (a *app) scan(ctx context.Context, args []string) int {
	sa, err := parseScanArgs(args)
	if err != nil {
		a.errorf("%v", err)
		fmt.Fprintln(a.stderr, "run 'tagaudit help' for usage")
		return exitUsage
	}
	if sa.showHelp {
		fmt.Fprint(a.stdout, usageText)
		return exitOK
	}

	cfg, err := a.resolveScanConfig(sa)
	if err != nil {
		a.errorf("%v", err)
		return exitUsage
	}

	logger, err := logging.New("tagaudit", cfg.engine.LogLevel, a.stderr)
	if err != nil {
		a.errorf("%v", err)
		return exitUsage
	}
	if cfg.source != "" {
		logger.Debug("config loaded", "source", cfg.source)
	}

	fieldDefaults := output.DefaultRowFields
	if cfg.engine.Output == "table" {
		fieldDefaults = output.DefaultTableFields
	}
	fields, err := output.ResolveFields(cfg.ui.Fields, fieldDefaults)
	if err != nil {
		a.errorf("%v", err)
		return exitUsage
	}
	if sa.open && cfg.engine.Output != "html" {
		a.errorf("--open requires --output html")
		return exitUsage
	}

	opts := cfg.opts
	opts.Stdin = a.stdin
	opts.Logger = logger
	if progress.ShouldShow(sa.progress, sa.noProgress, fileCountHint(opts.Paths)) {
		opts.ProgressObserver = progress.NewAutoObserver(a.stderr)
	}

	res, err := engine.Run(ctx, opts)
	if err != nil {
		a.errorf("%v", err)
		return exitUsage
	}
	for _, fe := range res.Errors {
		a.errorf("%s", fe.Error())
	}

	mode, _ := termcolor.ParseMode(cfg.engine.Color)
	env := termcolor.EnvFrom(a.getenv)
	outOpts := output.Options{
		Fields:       fields,
		OnlyProblems: cfg.ui.OnlyProblems,
		SnippetWidth: cfg.ui.SnippetWidth,
		Quiet:        cfg.ui.Quiet,
		Color:        termcolor.ShouldColor(mode, a.stdout, env),
		Scheme:       termcolor.DetectScheme(env),
		Profile:      termcolor.DetectProfile(env),
		Version:      resolveVersion(),
	}

	if sa.open {
		if err := a.openReport(res, outOpts); err != nil {
			a.errorf("%v", err)
			return exitUsage
		}
	} else if err := output.Write(a.stdout, cfg.engine.Output, res, outOpts); err != nil {
		a.errorf("%v", err)
		return exitUsage
	}
	return exitCode(res)
}

func (a *app) openReport(res *engine.Result, opts output.Options) error {
	f, err := os.CreateTemp("", "tagaudit-*.html")
	if err != nil {
		return err
	}
	if err := output.WriteHTML(f, res, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, f.Name())
	return openBrowser(f.Name())
}

// fileCountHint is a lower bound on the number of inputs; a directory counts as many.
func fileCountHint(paths []string) int {
	if len(paths) != 1 {
		return len(paths)
	}
	if info, err := os.Stat(paths[0]); err == nil && info.IsDir() {
		return 2
	}
	return 1
}

func exitCode(res *engine.Result) int {
	switch {
	case res.Total == 0 && res.ErrorCount > 0:
		return exitUsage
	case res.Unbalanced > 0:
		return exitFindings
	default:
		return exitOK
	}
}
