package engine

import (
	"io"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/phyten/tagaudit/internal/model"
	"github.com/phyten/tagaudit/internal/progress"
)

// StdinPath は標準入力を表すパス引数です。
const StdinPath = "-"

// StdinName はレポート上の標準入力のファイル名です。
const StdinName = "<stdin>"

// FileReport は 1 ファイル分の解析結果を表す
type FileReport struct {
	File     string          `json:"file"`
	Lang     string          `json:"lang,omitempty"`
	Tag      string          `json:"tag"`
	Lines    int             `json:"lines"`
	Events   []model.Event   `json:"events"`
	Final    int             `json:"final_depth"`
	Pending  []int           `json:"unclosed,omitempty"`
	Excess   []int           `json:"excess,omitempty"`
	Warnings []model.Warning `json:"warnings,omitempty"`
	Balanced bool            `json:"balanced"`
}

// Findings は未閉鎖の開きタグと過剰な閉じタグを行番号順に返す
func (r FileReport) Findings() []model.Finding {
	out := make([]model.Finding, 0, len(r.Pending)+len(r.Excess))
	for _, line := range r.Excess {
		out = append(out, model.Finding{Kind: model.FindingExcessClose, Line: line})
	}
	for _, line := range r.Pending {
		out = append(out, model.Finding{Kind: model.FindingUnclosedOpen, Line: line})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}

// FileError は 1 ファイルの読み込みに失敗した際の情報を表す
type FileError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

func (e FileError) Error() string {
	return e.File + ": " + e.Stage + ": " + e.Message
}

// Options は実行オプション
type Options struct {
	Tag        string
	IgnoreCase bool
	BraceAware bool
	Lang       string // 空なら拡張子から判定

	// Dir resolves relative Paths; empty means the process working directory.
	Dir               string
	Paths             []string
	Extensions        []string
	Excludes          []string
	NoDefaultExcludes bool
	Jobs              int
	MaxFileBytes      int

	Stdin            io.Reader         `json:"-"`
	Logger           hclog.Logger      `json:"-"`
	ProgressObserver progress.Observer `json:"-"`
}

// Result は出力
type Result struct {
	Tag        string       `json:"tag"`
	Files      []FileReport `json:"files"`
	Total      int          `json:"total"`
	Unbalanced int          `json:"unbalanced"`
	ElapsedMS  int64        `json:"elapsed_ms"`
	Errors     []FileError  `json:"errors,omitempty"`
	ErrorCount int          `json:"error_count"`
}

// Balanced は全ファイルで対応が取れていれば true を返す
func (r *Result) Balanced() bool {
	return r.Unbalanced == 0
}
