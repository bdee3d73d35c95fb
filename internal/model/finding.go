package model

import "fmt"

// WarningKind はマスク処理中に見つかった非致命的な問題の種別です。
type WarningKind string

const (
	WarningUnterminatedComment WarningKind = "unterminated-comment"
	WarningUnterminatedLiteral WarningKind = "unterminated-literal"
)

// Warning は閉じられていないコメントや文字列リテラルを表します。
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Line    int         `json:"line"`
	Col     int         `json:"col"`
	Offset  int         `json:"offset"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// FindingKind は深さ追跡で見つかった不整合の種別です。
type FindingKind string

const (
	FindingExcessClose  FindingKind = "excess-close"
	FindingUnclosedOpen FindingKind = "unclosed-open"
)

// Finding は対応の取れないタグ 1 件を表します。
type Finding struct {
	Kind FindingKind `json:"kind"`
	Line int         `json:"line"`
}

// Message はレポート用の 1 行メッセージを返します。
func (f Finding) Message() string {
	switch f.Kind {
	case FindingExcessClose:
		return fmt.Sprintf("Excess closing tag at line %d", f.Line)
	case FindingUnclosedOpen:
		return fmt.Sprintf("Unclosed tag from line %d", f.Line)
	default:
		return fmt.Sprintf("%s at line %d", f.Kind, f.Line)
	}
}
