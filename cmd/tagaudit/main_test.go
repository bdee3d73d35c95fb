package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode"
)

type testRun struct {
	code   int
	stdout string
	stderr string
}

func newTestApp(t *testing.T, env map[string]string, stdin string) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	home := t.TempDir()
	vars := map[string]string{"HOME": home, "XDG_CONFIG_HOME": filepath.Join(home, ".config")}
	for k, v := range env {
		vars[k] = v
	}
	var stdout, stderr bytes.Buffer
	a := &app{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
		getenv: func(key string) string { return vars[key] },
		cwd:    t.TempDir(),
	}
	return a, &stdout, &stderr
}

func runApp(t *testing.T, env map[string]string, stdin string, args ...string) testRun {
	t.Helper()
	a, stdout, stderr := newTestApp(t, env, stdin)
	code := a.run(context.Background(), args)
	return testRun{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanBalancedDirectoryExitsZero(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.html"), "<div>\n  <!-- </div> -->\n</div>\n")
	got := runApp(t, nil, "", "--no-progress", dir)
	if got.code != exitOK {
		t.Fatalf("exit code = %d, stderr=%s", got.code, got.stderr)
	}
	if !strings.Contains(got.stdout, "All <div> tags balanced.") {
		t.Fatalf("バランス済みのメッセージがありません: %q", got.stdout)
	}
	if strings.Contains(got.stdout, "\x1b[") {
		t.Fatalf("バッファへの出力に色が付いています: %q", got.stdout)
	}
}

func TestScanFindingsExitOne(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jsx"), "<div>\n")
	writeFile(t, filepath.Join(dir, "b.jsx"), "<div></div>\n")
	got := runApp(t, nil, "", "scan", "--no-progress", dir)
	if got.code != exitFindings {
		t.Fatalf("exit code = %d, stderr=%s", got.code, got.stderr)
	}
	if !strings.Contains(got.stdout, "Unclosed tag from line 1") {
		t.Fatalf("未閉鎖タグの報告がありません: %q", got.stdout)
	}
	if !strings.Contains(got.stdout, "Scanned 2 files, 1 unbalanced") {
		t.Fatalf("サマリーがありません: %q", got.stdout)
	}
}

func TestScanRelativePathUsesAppDir(t *testing.T) {
	a, stdout, stderr := newTestApp(t, nil, "")
	writeFile(t, filepath.Join(a.cwd, "src", "page.html"), "<div>\n")
	code := a.run(context.Background(), []string{"--no-progress", "-o", "tsv", "src"})
	if code != exitFindings {
		t.Fatalf("exit code = %d, stderr=%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "src/page.html") {
		t.Fatalf("作業ディレクトリ基準の相対パスが解析されていません: %q", stdout.String())
	}
}

func TestScanStdinNDJSONOnlyProblems(t *testing.T) {
	got := runApp(t, nil, "<span>\n</span>\n</span>\n", "-t", "span", "-o", "ndjson", "--only-problems", "-")
	if got.code != exitFindings {
		t.Fatalf("exit code = %d, stderr=%s", got.code, got.stderr)
	}
	lines := strings.Split(strings.TrimSpace(got.stdout), "\n")
	if len(lines) != 1 {
		t.Fatalf("問題行だけが出力されるべきです: %q", got.stdout)
	}
	var row map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &row); err != nil {
		t.Fatalf("NDJSON の解析に失敗しました: %v", err)
	}
	if row["file"] != "<stdin>" || row["line"] != float64(3) || row["excess"] != true {
		t.Fatalf("NDJSON の内容が想定外です: %v", row)
	}
}

func TestScanEnvAndConfigLayers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".tagaudit.yaml"), "tag: span\noutput: json\n")
	writeFile(t, filepath.Join(dir, "page.vue"), "<template>\n  <span><p>\n</template>\n")

	got := runApp(t, nil, "", "--no-progress", dir)
	var res struct {
		Tag   string `json:"tag"`
		Total int    `json:"total"`
	}
	if err := json.Unmarshal([]byte(got.stdout), &res); err != nil {
		t.Fatalf("設定ファイルの output=json が反映されていません: %v\n%s", err, got.stdout)
	}
	if res.Tag != "span" || res.Total != 1 || got.code != exitFindings {
		t.Fatalf("設定ファイルの tag が反映されていません: %+v code=%d", res, got.code)
	}

	got = runApp(t, map[string]string{"TAGAUDIT_TAG": "p"}, "", "--no-progress", dir)
	if err := json.Unmarshal([]byte(got.stdout), &res); err != nil {
		t.Fatalf("JSON の解析に失敗しました: %v", err)
	}
	if res.Tag != "p" {
		t.Fatalf("環境変数が設定ファイルより優先されていません: %+v", res)
	}

	got = runApp(t, map[string]string{"TAGAUDIT_TAG": "p"}, "", "--no-progress", "--tag", "template", "-o", "table", dir)
	if got.code != exitOK || !strings.Contains(got.stdout, "All <template> tags balanced.") {
		t.Fatalf("フラグが環境変数より優先されていません: code=%d %q", got.code, got.stdout)
	}
}

func TestScanUsageErrors(t *testing.T) {
	cases := [][]string{
		{"--output", "xml", "."},
		{"--tag", "1bad", "."},
		{"--jobs", "0", "."},
		{"--exclude", "src/[", "."},
		{"--fields", "author", "."},
		{"--open", "."},
		{"--bogus"},
	}
	for _, args := range cases {
		got := runApp(t, nil, "", args...)
		if got.code != exitUsage {
			t.Fatalf("%v: exit code = %d, want %d", args, got.code, exitUsage)
		}
		if !strings.Contains(got.stderr, "tagaudit: ") {
			t.Fatalf("%v: エラーメッセージがありません: %q", args, got.stderr)
		}
	}
}

func TestScanUnreadableOnlyExitsTwo(t *testing.T) {
	dir := t.TempDir()
	got := runApp(t, nil, "", "--no-progress", filepath.Join(dir, "missing.jsx"))
	if got.code != exitUsage {
		t.Fatalf("exit code = %d, want %d", got.code, exitUsage)
	}
	if !strings.Contains(got.stderr, "missing.jsx") {
		t.Fatalf("読み込みエラーが stderr に出ていません: %q", got.stderr)
	}
}

func TestScanInvalidEnvIsUsageError(t *testing.T) {
	got := runApp(t, map[string]string{"TAGAUDIT_JOBS": "lots"}, "", ".")
	if got.code != exitUsage || !strings.Contains(got.stderr, "TAGAUDIT_JOBS") {
		t.Fatalf("不正な環境変数が報告されていません: code=%d %q", got.code, got.stderr)
	}
}

func TestScanOpenWritesHTMLAndOpensBrowser(t *testing.T) {
	var opened string
	orig := openBrowser
	openBrowser = func(path string) error {
		opened = path
		return nil
	}
	t.Cleanup(func() { openBrowser = orig })

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jsx"), "<div></div>\n")
	got := runApp(t, nil, "", "--no-progress", "-o", "html", "--open", dir)
	if got.code != exitOK {
		t.Fatalf("exit code = %d, stderr=%s", got.code, got.stderr)
	}
	if opened == "" || strings.TrimSpace(got.stdout) != opened {
		t.Fatalf("ブラウザで開くパスが想定外です: opened=%q stdout=%q", opened, got.stdout)
	}
	t.Cleanup(func() { _ = os.Remove(opened) })
	data, err := os.ReadFile(opened)
	if err != nil {
		t.Fatalf("HTML レポートが書き出されていません: %v", err)
	}
	if !strings.Contains(string(data), "<html") {
		t.Fatalf("HTML ではありません: %q", string(data))
	}
}

func TestMaskCommand(t *testing.T) {
	got := runApp(t, nil, "<!-- <div> --><div>", "mask", "--lang", "html", "-")
	if got.code != exitOK {
		t.Fatalf("exit code = %d, stderr=%s", got.code, got.stderr)
	}
	if got.stdout != "              <div>" {
		t.Fatalf("マスク結果が想定外です: %q", got.stdout)
	}
}

func TestMaskCommandDiff(t *testing.T) {
	a, stdout, stderr := newTestApp(t, nil, "")
	writeFile(t, filepath.Join(a.cwd, "page.html"), "<div>\n<!-- </div> -->\n</div>\n")
	code := a.run(context.Background(), []string{"mask", "--diff", "page.html"})
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr=%s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "--- page.html (html)") || !strings.Contains(out, "-<!-- </div> -->") {
		t.Fatalf("差分が想定外です: %q", out)
	}
}

func TestMaskCommandMissingFile(t *testing.T) {
	got := runApp(t, nil, "", "mask", "nope.html")
	if got.code != exitUsage {
		t.Fatalf("exit code = %d, want %d", got.code, exitUsage)
	}
}

func TestVersionAndHelp(t *testing.T) {
	got := runApp(t, nil, "", "version")
	if got.code != exitOK || !strings.HasPrefix(got.stdout, "tagaudit ") {
		t.Fatalf("version の出力が想定外です: %q", got.stdout)
	}
	got = runApp(t, nil, "", "--help")
	if got.code != exitOK || !strings.Contains(got.stdout, "Usage:") {
		t.Fatalf("help の出力が想定外です: %q", got.stdout)
	}
	for i, r := range got.stdout {
		if r > unicode.MaxASCII {
			t.Fatalf("help に ASCII 以外の文字 %q が含まれています (offset %d)", r, i)
		}
	}
}
