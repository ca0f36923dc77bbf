package spec

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	verr "github.com/openvt/vtgen/error"
)

type tokenKind string

const (
	tokenKindID             = tokenKind("id")
	tokenKindInt            = tokenKind("integer")
	tokenKindFatArrow       = tokenKind("=>")
	tokenKindRange          = tokenKind("..")
	tokenKindBlockOpen      = tokenKind("{")
	tokenKindBlockClose     = tokenKind("}")
	tokenKindTupleOpen      = tokenKind("(")
	tokenKindTupleClose     = tokenKind(")")
	tokenKindComma          = tokenKind(",")
	tokenKindMetaDataMarker = tokenKind("%")
	tokenKindEOF            = tokenKind("eof")
	tokenKindInvalid        = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	num  int
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newIDToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindID,
		text: text,
		pos:  pos,
	}
}

func newIntToken(num int, text string, pos Position) *token {
	return &token{
		kind: tokenKindInt,
		text: text,
		num:  num,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

type lexer struct {
	src     *bufio.Reader
	row     int
	col     int
	newline bool
}

func newLexer(src io.Reader) *lexer {
	return &lexer{
		src: bufio.NewReader(src),
		row: 1,
		col: 0,
	}
}

// read consumes the next rune. The position of the consumed rune is
// (l.row, l.col) until the next call.
func (l *lexer) read() (rune, bool, error) {
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			l.col++
			return 0, true, nil
		}
		return 0, false, err
	}
	if l.newline {
		l.row++
		l.col = 0
		l.newline = false
	}
	l.col++
	if c == '\n' {
		l.newline = true
	}
	return c, false, nil
}

func (l *lexer) peek() (rune, bool, error) {
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, true, nil
		}
		return 0, false, err
	}
	err = l.src.UnreadRune()
	if err != nil {
		return 0, false, err
	}
	return c, false, nil
}

func (l *lexer) next() (*token, error) {
	c, eof, err := l.skipWSsAndComments()
	if err != nil {
		return nil, err
	}
	if eof {
		return newEOFToken(newPosition(l.row, l.col)), nil
	}

	pos := newPosition(l.row, l.col)
	switch c {
	case '{':
		return newSymbolToken(tokenKindBlockOpen, pos), nil
	case '}':
		return newSymbolToken(tokenKindBlockClose, pos), nil
	case '(':
		return newSymbolToken(tokenKindTupleOpen, pos), nil
	case ')':
		return newSymbolToken(tokenKindTupleClose, pos), nil
	case ',':
		return newSymbolToken(tokenKindComma, pos), nil
	case '%':
		return newSymbolToken(tokenKindMetaDataMarker, pos), nil
	case '=':
		c1, eof, err := l.peek()
		if err != nil {
			return nil, err
		}
		if eof || c1 != '>' {
			return newInvalidToken(string(c), pos), nil
		}
		_, _, err = l.read()
		if err != nil {
			return nil, err
		}
		return newSymbolToken(tokenKindFatArrow, pos), nil
	case '.':
		c1, eof, err := l.peek()
		if err != nil {
			return nil, err
		}
		if eof || c1 != '.' {
			return newInvalidToken(string(c), pos), nil
		}
		_, _, err = l.read()
		if err != nil {
			return nil, err
		}
		// ..= is an alternative spelling of the inclusive range.
		c2, eof, err := l.peek()
		if err != nil {
			return nil, err
		}
		if !eof && c2 == '=' {
			_, _, err = l.read()
			if err != nil {
				return nil, err
			}
		}
		return newSymbolToken(tokenKindRange, pos), nil
	default:
		switch {
		case isDigit(c):
			return l.lexInt(c, pos)
		case isIDHead(c):
			return l.lexID(c, pos)
		}
		return newInvalidToken(string(c), pos), nil
	}
}

func (l *lexer) skipWSsAndComments() (rune, bool, error) {
	for {
		c, eof, err := l.read()
		if err != nil || eof {
			return c, eof, err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '/':
			c1, eof, err := l.peek()
			if err != nil {
				return 0, false, err
			}
			if eof || c1 != '/' {
				return c, false, nil
			}
			for {
				c, eof, err := l.read()
				if err != nil {
					return 0, false, err
				}
				if eof || c == '\n' {
					break
				}
			}
			continue
		}
		return c, false, nil
	}
}

func (l *lexer) lexInt(head rune, pos Position) (*token, error) {
	var b strings.Builder
	b.WriteRune(head)
	base := 10
	if head == '0' {
		c, eof, err := l.peek()
		if err != nil {
			return nil, err
		}
		if !eof && (c == 'x' || c == 'X') {
			_, _, err = l.read()
			if err != nil {
				return nil, err
			}
			base = 16
			b.Reset()
		}
	}
	for {
		c, eof, err := l.peek()
		if err != nil {
			return nil, err
		}
		if eof || !isIntDigit(c, base) {
			break
		}
		_, _, err = l.read()
		if err != nil {
			return nil, err
		}
		b.WriteRune(c)
	}
	text := b.String()
	num, err := strconv.ParseUint(text, base, 32)
	if err != nil {
		return nil, &verr.SpecError{
			Cause:  synErrInvalidIntLiteral,
			Detail: text,
			Row:    pos.Row,
			Col:    pos.Col,
		}
	}
	if base == 16 {
		text = "0x" + text
	}
	return newIntToken(int(num), text, pos), nil
}

func (l *lexer) lexID(head rune, pos Position) (*token, error) {
	var b strings.Builder
	b.WriteRune(head)
	for {
		c, eof, err := l.peek()
		if err != nil {
			return nil, err
		}
		if eof || !isIDBody(c) {
			break
		}
		_, _, err = l.read()
		if err != nil {
			return nil, err
		}
		b.WriteRune(c)
	}
	return newIDToken(b.String(), pos), nil
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIntDigit(c rune, base int) bool {
	if base == 16 {
		return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
	}
	return isDigit(c)
}

func isIDHead(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIDBody(c rune) bool {
	return isIDHead(c) || isDigit(c)
}
