package termgrid

import (
	"io"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TokenKind classifies a Token.
type TokenKind uint8

const (
	TokenWord TokenKind = iota
	TokenNewline
	TokenEnd
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenNewline:
		return "newline"
	}
	return "end"
}

// Token is a word, a wrapped line, an explicit line break or the end of the
// input. Width is the display width of Text.
type Token struct {
	Kind  TokenKind
	Text  string
	Width int
}

// Wrap selects how lines are broken.
type Wrap uint8

const (
	WrapWord   Wrap = iota // break between words
	WrapLetter             // break at any character
)

// Tokenizer pulls words and lines from a rune stream. Runs of whitespace
// other than newlines collapse to single spaces between words.
type Tokenizer struct {
	src  io.RuneReader
	peek rune
	has  bool
	eof  bool

	wrap     Wrap
	deferred *Token
	ended    bool
}

// NewTokenizer reads runes from src.
func NewTokenizer(src io.RuneReader) *Tokenizer {
	return &Tokenizer{src: src}
}

// TokenizeString is NewTokenizer over a string.
func TokenizeString(s string) *Tokenizer {
	return NewTokenizer(strings.NewReader(s))
}

// Wrap sets the line breaking mode.
func (t *Tokenizer) Wrap(w Wrap) *Tokenizer {
	t.wrap = w
	return t
}

func (t *Tokenizer) next() (rune, bool) {
	if t.has {
		t.has = false
		return t.peek, true
	}
	if t.eof {
		return 0, false
	}
	r, _, err := t.src.ReadRune()
	if err != nil {
		t.eof = true
		return 0, false
	}
	return r, true
}

func (t *Tokenizer) unread(r rune) {
	t.peek, t.has = r, true
}

// NextWord skips whitespace and returns the next word. A newline found while
// skipping is returned as a TokenNewline; TokenEnd means the input is
// exhausted.
func (t *Tokenizer) NextWord() Token {
	var r rune
	var ok bool
	for {
		r, ok = t.next()
		if !ok {
			return Token{Kind: TokenEnd}
		}
		if r == '\n' {
			return Token{Kind: TokenNewline}
		}
		if !unicode.IsSpace(r) {
			break
		}
	}
	var sb strings.Builder
	for ok && !unicode.IsSpace(r) {
		sb.WriteRune(r)
		r, ok = t.next()
	}
	if ok {
		t.unread(r)
	}
	word := sb.String()
	return Token{Kind: TokenWord, Text: word, Width: uniseg.StringWidth(word)}
}

// Done reports whether every word has been consumed by NextLine.
func (t *Tokenizer) Done() bool {
	if t.ended {
		return true
	}
	if t.deferred != nil {
		return t.deferred.Kind == TokenEnd
	}
	for {
		r, ok := t.next()
		if !ok {
			return true
		}
		if !unicode.IsSpace(r) || r == '\n' {
			t.unread(r)
			return false
		}
	}
}

// NextLine returns the next line no wider than maxWidth. Words are packed
// greedily with single spaces. A line that is interrupted by an explicit
// newline ends there; an explicit newline on an otherwise empty line is
// returned as a TokenNewline. A word wider than maxWidth is split across
// lines. TokenEnd is returned once the input is exhausted, or immediately
// when maxWidth is not positive.
func (t *Tokenizer) NextLine(maxWidth int) Token {
	if maxWidth <= 0 {
		return Token{Kind: TokenEnd}
	}
	if t.wrap == WrapLetter {
		return t.nextLetterLine(maxWidth)
	}
	return t.nextWordLine(maxWidth)
}

func (t *Tokenizer) nextWordLine(maxWidth int) Token {
	var sb strings.Builder
	width := 0

	if d := t.deferred; d != nil {
		t.deferred = nil
		switch d.Kind {
		case TokenWord:
			if d.Width > maxWidth {
				return t.splitWord(*d, maxWidth)
			}
			sb.WriteString(d.Text)
			width = d.Width
		case TokenEnd:
			t.ended = true
			return *d
		default:
			return *d
		}
	}

	for {
		tok := t.NextWord()
		switch tok.Kind {
		case TokenWord:
			if width == 0 {
				if tok.Width > maxWidth {
					return t.splitWord(tok, maxWidth)
				}
				sb.WriteString(tok.Text)
				width = tok.Width
				continue
			}
			if width+1+tok.Width > maxWidth {
				t.deferred = &tok
				return Token{Kind: TokenWord, Text: sb.String(), Width: width}
			}
			sb.WriteByte(' ')
			sb.WriteString(tok.Text)
			width += 1 + tok.Width
		case TokenNewline:
			if width == 0 {
				return tok
			}
			return Token{Kind: TokenWord, Text: sb.String(), Width: width}
		case TokenEnd:
			if width == 0 {
				t.ended = true
				return tok
			}
			t.deferred = &tok
			return Token{Kind: TokenWord, Text: sb.String(), Width: width}
		}
	}
}

// splitWord returns as many leading graphemes of tok as fit in maxWidth and
// defers the rest. At least one grapheme is always taken so progress is
// made even when a single grapheme is wider than maxWidth.
func (t *Tokenizer) splitWord(tok Token, maxWidth int) Token {
	g := uniseg.NewGraphemes(tok.Text)
	width, cut := 0, 0
	for g.Next() {
		w := g.Width()
		if width > 0 && width+w > maxWidth {
			break
		}
		width += w
		_, cut = g.Positions()
	}
	if cut < len(tok.Text) {
		rest := tok.Text[cut:]
		t.deferred = &Token{Kind: TokenWord, Text: rest, Width: uniseg.StringWidth(rest)}
	}
	return Token{Kind: TokenWord, Text: tok.Text[:cut], Width: width}
}

func (t *Tokenizer) nextLetterLine(maxWidth int) Token {
	if t.deferred != nil {
		// only TokenEnd is ever deferred in letter mode
		t.deferred = nil
		t.ended = true
		return Token{Kind: TokenEnd}
	}
	var sb strings.Builder
	width := 0
	for {
		r, ok := t.next()
		if !ok {
			// trailing whitespace does not make a line of its own
			if strings.TrimSpace(sb.String()) == "" {
				t.ended = true
				return Token{Kind: TokenEnd}
			}
			t.deferred = &Token{Kind: TokenEnd}
			return letterLine(sb.String(), width)
		}
		if r == '\n' {
			if width == 0 {
				return Token{Kind: TokenNewline}
			}
			return letterLine(sb.String(), width)
		}
		if unicode.IsSpace(r) {
			r = ' '
		}
		w := runewidth.RuneWidth(r)
		if width > 0 && width+w > maxWidth {
			t.unread(r)
			return letterLine(sb.String(), width)
		}
		sb.WriteRune(r)
		width += w
	}
}

// letterLine trims trailing spaces from a letter-wrapped line.
func letterLine(s string, width int) Token {
	trimmed := strings.TrimRight(s, " ")
	return Token{Kind: TokenWord, Text: trimmed, Width: width - (len(s) - len(trimmed))}
}
