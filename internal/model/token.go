package model

import "strings"

// Kind はタグ出現の種別（開き／閉じ／自己終了）を表します。
type Kind int

const (
	KindOpen Kind = iota
	KindClose
	KindSelfClose
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "OPEN"
	case KindClose:
		return "CLOSE"
	case KindSelfClose:
		return "SELF"
	default:
		return "UNKNOWN"
	}
}

// MarshalText は JSON などで種別を文字列として出力します。
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Delta は深さへの寄与量を返します。
func (k Kind) Delta() int {
	switch k {
	case KindOpen:
		return 1
	case KindClose:
		return -1
	default:
		return 0
	}
}

// SnippetLimit はスニペットの最大バイト数です。
const SnippetLimit = 70

// Span は 1 件の検出範囲を行・桁・バイトオフセットで表します。
type Span struct {
	StartLine int `json:"start_line"`
	StartCol  int `json:"start_col"`
	EndLine   int `json:"end_line"`
	EndCol    int `json:"end_col"`
	ByteStart int `json:"byte_start"`
	ByteEnd   int `json:"byte_end"`
}

// Token は構造タグ 1 件の出現を表します。生成後は変更しません。
type Token struct {
	Kind    Kind   `json:"kind"`
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Offset  int    `json:"offset"`
	Span    Span   `json:"span"`
	Snippet string `json:"snippet"`
}

// Event は深さ追跡の結果を付与したトークンです。
type Event struct {
	Token
	DepthBefore int  `json:"depth_before"`
	DepthAfter  int  `json:"depth_after"`
	Excess      bool `json:"excess,omitempty"`
	Unclosed    bool `json:"unclosed,omitempty"`
}

// Problem は対応の取れない開き／閉じタグであれば true を返します。
func (e Event) Problem() bool {
	return e.Excess || e.Unclosed
}

// MakeSnippet は改行を空白に畳み、前後の空白を落として SnippetLimit バイトに収めます。
func MakeSnippet(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if len(s) <= SnippetLimit {
		return s
	}
	cut := SnippetLimit
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
