package input

import (
	"strconv"
	"strings"
	"time"

	"github.com/sanohiro/ze/internal/unicode"
)

// DefaultEscapeTimeout is how long a lone ESC byte waits for a
// follow-up before the decoder commits to a bare escape key.
const DefaultEscapeTimeout = 100 * time.Millisecond

// Decoder turns bytes pulled from a RingBuffer into Key events.
type Decoder struct {
	EscapeTimeout time.Duration
	pending       []Key
}

// NewDecoder returns a decoder using DefaultEscapeTimeout.
func NewDecoder() *Decoder {
	return &Decoder{EscapeTimeout: DefaultEscapeTimeout}
}

// Cancel drops any buffered partial-sequence state, as if the next
// Decode call were starting fresh.
func (d *Decoder) Cancel() {
	d.pending = nil
}

// Decode returns the next Key event, or ok=false if no bytes are
// currently available.
func (d *Decoder) Decode(rb *RingBuffer) (Key, bool) {
	if len(d.pending) > 0 {
		k := d.pending[0]
		d.pending = d.pending[1:]
		return k, true
	}
	b, ok := rb.ReadByte(0)
	if !ok {
		return Key{}, false
	}
	return d.decodeByte(b, rb), true
}

func (d *Decoder) decodeByte(b byte, rb *RingBuffer) Key {
	switch {
	case b == 0x1B:
		return d.decodeEscape(rb)
	case b == 0x00:
		return Key{Kind: KindCtrl, Byte: '@'}
	case b == 0x09:
		return Key{Kind: KindTab}
	case b == 0x0A || b == 0x0D:
		return Key{Kind: KindEnter}
	case b == 0x7F:
		return Key{Kind: KindBackspace}
	case b >= 0x01 && b <= 0x1F:
		return Key{Kind: KindCtrl, Byte: b - 1 + 'a'}
	case b >= 0x20 && b <= 0x7E:
		return Key{Kind: KindChar, Byte: b}
	case b >= 0xC2 && b <= 0xF4:
		return d.decodeUTF8(b, rb, false)
	default:
		return Key{Kind: KindNone}
	}
}

func utf8SeqLen(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

func (d *Decoder) decodeUTF8(lead byte, rb *RingBuffer, paste bool) Key {
	n := utf8SeqLen(lead)
	if n == 0 {
		return Key{Kind: KindNone}
	}
	buf := []byte{lead}
	for len(buf) < n {
		nb, ok := rb.ReadByte(0)
		if !ok || !unicode.IsUTF8Continuation(nb) {
			return Key{Kind: KindNone}
		}
		buf = append(buf, nb)
	}
	cp, _ := unicode.DecodeNext(buf, 0)
	return Key{Kind: KindCodepoint, Rune: cp, Paste: paste}
}

func (d *Decoder) decodeEscape(rb *RingBuffer) Key {
	timeout := d.EscapeTimeout
	if timeout <= 0 {
		timeout = DefaultEscapeTimeout
	}
	b, ok := rb.ReadByte(timeout)
	if !ok {
		return Key{Kind: KindEscape}
	}
	switch b {
	case '[':
		return d.decodeCSI(rb)
	case 'O':
		return d.decodeSS3(rb)
	default:
		if b >= 0x20 && b <= 0x7E {
			return Key{Kind: KindAlt, Byte: b}
		}
		if b >= 0x01 && b <= 0x1F {
			// ESC followed by a control byte: Ctrl-Alt-<letter> (Emacs C-M-s etc).
			return Key{Kind: KindCtrlAlt, Byte: b - 1 + 'a'}
		}
		return Key{Kind: KindEscape}
	}
}

func (d *Decoder) decodeSS3(rb *RingBuffer) Key {
	b, ok := rb.ReadByte(0)
	if !ok {
		return Key{Kind: KindNone}
	}
	switch b {
	case 'P':
		return Key{Kind: KindF1}
	case 'Q':
		return Key{Kind: KindF2}
	case 'R':
		return Key{Kind: KindF3}
	case 'S':
		return Key{Kind: KindF4}
	case 'A':
		return Key{Kind: KindArrowUp}
	case 'B':
		return Key{Kind: KindArrowDown}
	case 'C':
		return Key{Kind: KindArrowRight}
	case 'D':
		return Key{Kind: KindArrowLeft}
	case 'H':
		return Key{Kind: KindHome}
	case 'F':
		return Key{Kind: KindEnd}
	default:
		return Key{Kind: KindNone}
	}
}

// decodeCSI accumulates parameter bytes until a final byte (A-Z or '~'),
// mirroring the teacher's read-until-final-byte CSI loop.
func (d *Decoder) decodeCSI(rb *RingBuffer) Key {
	var params []byte
	for {
		nb, ok := rb.ReadByte(0)
		if !ok {
			return Key{Kind: KindNone}
		}
		if (nb >= 'A' && nb <= 'Z') || nb == '~' {
			return d.processCSIFinal(nb, string(params), rb)
		}
		params = append(params, nb)
	}
}

func parseCSIParams(params string) (num, mod int) {
	parts := strings.Split(params, ";")
	if len(parts) > 0 && parts[0] != "" {
		num, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		mod, _ = strconv.Atoi(parts[1])
	}
	return num, mod
}

func (d *Decoder) processCSIFinal(final byte, params string, rb *RingBuffer) Key {
	num, mod := parseCSIParams(params)
	shift := mod == 2

	if final == '~' && num == 200 {
		d.decodePasteBody(rb)
		return d.popPendingOrNone()
	}

	var key Key
	switch final {
	case 'A':
		key = Key{Kind: KindArrowUp}
	case 'B':
		key = Key{Kind: KindArrowDown}
	case 'C':
		key = Key{Kind: KindArrowRight}
	case 'D':
		key = Key{Kind: KindArrowLeft}
	case 'H':
		key = Key{Kind: KindHome}
	case 'F':
		key = Key{Kind: KindEnd}
	case '~':
		switch num {
		case 1, 7:
			key = Key{Kind: KindHome}
		case 4, 8:
			key = Key{Kind: KindEnd}
		case 5:
			key = Key{Kind: KindPageUp}
		case 6:
			key = Key{Kind: KindPageDown}
		default:
			return Key{Kind: KindNone}
		}
	default:
		return Key{Kind: KindNone}
	}
	key.Shift = shift
	return key
}

func (d *Decoder) popPendingOrNone() Key {
	if len(d.pending) == 0 {
		return Key{Kind: KindNone}
	}
	k := d.pending[0]
	d.pending = d.pending[1:]
	return k
}

// decodePasteBody consumes bytes until the ESC[201~ terminator,
// decoding the bracketed content as a run of paste-flagged codepoint
// events queued on d.pending, one event per byte (see decodePasteByte).
func (d *Decoder) decodePasteBody(rb *RingBuffer) {
	const terminator = "\x1b[201~"
	var matched int
	for {
		b, ok := rb.ReadByte(0)
		if !ok {
			return
		}
		if b == terminator[matched] {
			matched++
			if matched == len(terminator) {
				return
			}
			continue
		}
		if matched > 0 {
			// false start: replay the partially matched terminator bytes
			// as literal content before continuing.
			for i := 0; i < matched; i++ {
				d.decodePasteByte(terminator[i])
			}
			matched = 0
		}
		if b == terminator[0] {
			matched = 1
			continue
		}
		d.decodePasteByte(b)
	}
}

func (d *Decoder) decodePasteByte(b byte) {
	if b < 0x80 {
		d.pending = append(d.pending, Key{Kind: KindCodepoint, Rune: rune(b), Paste: true})
		return
	}
	// Non-ASCII bytes are not decoded inside a paste body: each byte
	// >= 0x80 is queued as its own U+FFFD codepoint event.
	d.pending = append(d.pending, Key{Kind: KindCodepoint, Rune: unicode.ReplacementChar, Paste: true})
}
