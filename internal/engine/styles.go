package engine

import (
	"github.com/phyten/tagaudit/internal/detect"
	"github.com/phyten/tagaudit/internal/mask"
)

var (
	htmlComment = mask.Pair{Open: "<!--", Close: "-->"}
	cComment    = mask.Pair{Open: "/*", Close: "*/"}

	dquote = mask.Quote{Delim: '"', NotAfterWord: true}
	squote = mask.Quote{Delim: '\'', NotAfterWord: true}
	btick  = mask.Quote{Delim: '`', Multiline: true}

	styleJS = mask.DefaultStyle()
	// script and template blocks share one file
	styleSFC = mask.Style{
		BlockComments: []mask.Pair{htmlComment, cComment},
		LinePrefixes:  []string{"//"},
		Quotes:        []mask.Quote{dquote, squote, btick},
		Escape:        '\\',
		URLSafe:       true,
	}
	styleHTML = mask.Style{
		BlockComments: []mask.Pair{htmlComment},
		Quotes:        []mask.Quote{dquote, squote},
	}
	stylePHP = mask.Style{
		BlockComments: []mask.Pair{htmlComment, cComment},
		LinePrefixes:  []string{"//"},
		Quotes:        []mask.Quote{dquote, squote},
		Escape:        '\\',
		URLSafe:       true,
	}
	styleBlade = mask.Style{
		BlockComments: []mask.Pair{{Open: "{{--", Close: "--}}"}, htmlComment, cComment},
		Quotes:        []mask.Quote{dquote, squote},
		Escape:        '\\',
	}
	styleMarkdown = mask.Style{
		BlockComments: []mask.Pair{htmlComment},
		Quotes:        []mask.Quote{btick},
	}
	styleMDX = mask.Style{
		BlockComments: []mask.Pair{htmlComment, cComment},
		Quotes:        []mask.Quote{btick},
	}
	styleGoTemplate = mask.Style{
		BlockComments: []mask.Pair{{Open: "{{/*", Close: "*/}}"}, {Open: "{{- /*", Close: "*/ -}}"}, htmlComment},
		Quotes:        []mask.Quote{dquote, squote},
		Escape:        '\\',
	}
	styleJinja = mask.Style{
		BlockComments: []mask.Pair{{Open: "{#", Close: "#}"}, htmlComment},
		Quotes:        []mask.Quote{dquote, squote},
	}
	styleTwig   = styleJinja
	styleLiquid = mask.Style{
		BlockComments: []mask.Pair{{Open: "{% comment %}", Close: "{% endcomment %}"}, {Open: "{% raw %}", Close: "{% endraw %}"}, htmlComment},
		Quotes:        []mask.Quote{dquote, squote},
	}
	styleHandlebars = mask.Style{
		BlockComments: []mask.Pair{{Open: "{{!--", Close: "--}}"}, {Open: "{{!", Close: "}}"}, htmlComment},
		Quotes:        []mask.Quote{dquote, squote},
	}
	styleERB = mask.Style{
		BlockComments: []mask.Pair{{Open: "<%#", Close: "%>"}, htmlComment},
		Quotes:        []mask.Quote{dquote, squote},
	}
	styleRazor = mask.Style{
		BlockComments: []mask.Pair{{Open: "@*", Close: "*@"}, {Open: "<%--", Close: "--%>"}, htmlComment},
		Quotes:        []mask.Quote{dquote, squote},
	}
)

var languageStyleMap = map[string]mask.Style{
	"javascript":      styleJS,
	"javascriptreact": styleJS,
	"typescript":      styleJS,
	"typescriptreact": styleJS,
	"vue":             styleSFC,
	"svelte":          styleSFC,
	"astro":           styleSFC,
	"html":            styleHTML,
	"xml":             styleHTML,
	"php":             stylePHP,
	"blade":           styleBlade,
	"markdown":        styleMarkdown,
	"mdx":             styleMDX,
	"gotemplate":      styleGoTemplate,
	"jinja":           styleJinja,
	"django":          styleJinja,
	"twig":            styleTwig,
	"liquid":          styleLiquid,
	"handlebars":      styleHandlebars,
	"ejs":             styleERB,
	"erb":             styleERB,
	"razor":           styleRazor,
	"aspnet":          styleRazor,
}

// styleForLanguage falls back to the JavaScript style for unknown languages.
func styleForLanguage(lang string) mask.Style {
	if cs, ok := languageStyleMap[detect.NormalizeLangName(lang)]; ok {
		return cs
	}
	return styleJS
}
