package engine

import (
	"github.com/phyten/tagaudit/internal/depth"
	"github.com/phyten/tagaudit/internal/detect"
	"github.com/phyten/tagaudit/internal/mask"
	"github.com/phyten/tagaudit/internal/source"
	"github.com/phyten/tagaudit/internal/tag"
)

// DefaultTag は --tag 未指定時に監査するタグ名です。
const DefaultTag = "div"

// Analyze は 1 つのバッファに対して
// マスク → トークン化 → 深さ追跡 のパイプラインを実行します。
//
// name は言語判定とレポート上のファイル名に使われ、読み込みは行いません。
func Analyze(name string, data []byte, opts Options) FileReport {
	tagName := opts.Tag
	if tagName == "" {
		tagName = DefaultTag
	}
	lang := languageOf(name, data, opts.Lang)
	text := string(data)
	src := source.New(text)
	masked := mask.Desensitize(text, styleForLanguage(lang))
	tokens := tag.Tokenize(masked.Text, src, tagName, tag.Options{
		IgnoreCase: opts.IgnoreCase,
		BraceAware: opts.BraceAware,
	})
	tracked := depth.Track(tokens)
	return FileReport{
		File:     name,
		Lang:     lang,
		Tag:      tagName,
		Lines:    src.LineCount(),
		Events:   tracked.Events,
		Final:    tracked.Final,
		Pending:  tracked.Pending,
		Excess:   tracked.Excess,
		Warnings: masked.Warnings,
		Balanced: tracked.Balanced(),
	}
}

// Mask はファイルの言語に合わせたスタイルでマスクだけを行います。
func Mask(name string, data []byte, lang string) (string, mask.Result) {
	lang = languageOf(name, data, lang)
	return lang, mask.Desensitize(string(data), styleForLanguage(lang))
}

func languageOf(name string, data []byte, forced string) string {
	if forced != "" {
		return detect.NormalizeLangName(forced)
	}
	return detect.FromPathAndContent(name, data).Name
}
