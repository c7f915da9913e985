package input

// Kind identifies the category of a decoded Key event.
type Kind int

const (
	KindNone Kind = iota
	KindChar
	KindCtrl
	KindAlt
	KindCtrlAlt
	KindTab
	KindEnter
	KindBackspace
	KindEscape
	KindCodepoint
	KindArrowUp
	KindArrowDown
	KindArrowLeft
	KindArrowRight
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindF1
	KindF2
	KindF3
	KindF4
)

// Key is one decoded input event.
type Key struct {
	Kind  Kind
	Byte  byte // valid for KindChar/KindCtrl/KindAlt
	Rune  rune // valid for KindCodepoint
	Shift bool // set on modified arrow keys
	Paste bool // set on codepoints produced inside a bracketed paste
}
