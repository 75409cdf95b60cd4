package kson

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf16"

	"github.com/cybergodev/kson/internal"
)

// Parser is a recursive-descent JSON reader over a character source.
// It keeps one character of look-ahead and a single pushback slot.
// A Parser is not safe for concurrent use.
type Parser struct {
	in     Input
	config *Config
	logger *slog.Logger

	row, col   int
	ch         rune
	prefetch   bool
	prefetched rune
	buffer     [parseBufferSize]rune
	pos        int
	depth      int
	readErr    error
}

// NewParser creates a parser reading from in. It panics if config is invalid.
func NewParser(in Input, config ...*Config) *Parser {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0].Clone()
	} else {
		cfg = DefaultConfig()
	}

	if err := ValidateConfig(cfg); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	return &Parser{
		in:     in,
		config: cfg,
		logger: cfg.logger().With("component", "kson-parser"),
		row:    1,
	}
}

// Parse reads a complete document whose root is an array or an object.
// An empty or blank source yields a nil Json and a nil error.
func (p *Parser) Parse() (Json, error) {
	var ret Json
	var err error
	p.skipWhiteSpace()
	switch p.ch {
	case internal.EOF:
		if p.readErr != nil {
			return nil, p.fail("read failed")
		}
		return nil, nil
	case '{':
		ret, err = p.parseObject()
	case '[':
		ret, err = p.parseArray()
	default:
		return nil, p.fail(fmt.Sprintf("expecting '[' or '{', got: '%s'", internal.Display(p.ch)))
	}
	if err != nil {
		return nil, err
	}
	p.skipWhiteSpace()
	if p.ch != internal.EOF || p.readErr != nil {
		return nil, p.fail("expecting end of stream")
	}
	return ret, nil
}

// ParseValue reads one value of any kind. When complete is true the rest
// of the source must be blank.
func (p *Parser) ParseValue(complete bool) (any, error) {
	ret, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if complete {
		p.skipWhiteSpace()
		if p.ch != internal.EOF || p.readErr != nil {
			return nil, p.fail("expecting end of stream")
		}
	}
	return ret, nil
}

// More reports whether another value follows in the source. It is used with
// ParseValue(false) to read concatenated or newline delimited values.
func (p *Parser) More() (bool, error) {
	p.skipWhiteSpace()
	if p.ch == internal.EOF {
		if p.readErr != nil {
			return false, p.fail("read failed")
		}
		return false, nil
	}
	p.back()
	return true, nil
}

// next consumes one character and advances the position
func (p *Parser) next() rune {
	if p.prefetch {
		p.ch = p.prefetched
		p.prefetch = false
		return p.ch
	}
	p.ch = p.read()
	if p.ch == '\n' {
		p.row++
		p.col = 0
	} else {
		p.col++
	}
	return p.ch
}

func (p *Parser) read() rune {
	if p.readErr != nil {
		return internal.EOF
	}
	r, _, err := p.in.ReadRune()
	if err != nil {
		if err != io.EOF {
			p.readErr = err
		}
		return internal.EOF
	}
	return r
}

// back pushes the current character back so the next call to next returns it again
func (p *Parser) back() {
	if p.prefetch {
		panic(internalError("cannot go back twice"))
	}
	p.prefetch = true
	p.prefetched = p.ch
}

func (p *Parser) skipWhiteSpace() {
	for internal.IsSpace(p.next()) {
	}
}

// fail builds a positioned parse error. A pending read error takes the
// place of ErrInvalidJSON as the cause.
func (p *Parser) fail(message string) error {
	return p.failWith(ErrInvalidJSON, message)
}

func (p *Parser) failWith(cause error, message string) error {
	err := &ParseError{
		Row:     p.row,
		Col:     p.col,
		Message: message,
		Err:     cause,
	}
	if p.readErr != nil {
		err.Message = message + ": " + p.readErr.Error()
		err.Err = p.readErr
	}
	p.logError(err)
	return err
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.config.MaxDepth {
		return p.failWith(ErrDepthLimit, fmt.Sprintf("maximum nesting depth %d exceeded", p.config.MaxDepth))
	}
	return nil
}

func (p *Parser) parseArray() (*MutableArray, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	ret := NewMutableArray()
	p.skipWhiteSpace()
	if p.ch == ']' {
		return ret, nil
	}
	p.back()
	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		ret.values = append(ret.values, value)
		p.skipWhiteSpace()
		switch p.ch {
		case ']':
			return ret, nil
		case ',':
		default:
			return nil, p.fail(fmt.Sprintf("expecting ',' or ']', got: '%s'", internal.Display(p.ch)))
		}
	}
}

func (p *Parser) parseObject() (*MutableObject, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	ret := NewMutableObject()
	p.skipWhiteSpace()
	if p.ch == '}' {
		return ret, nil
	}
	for {
		if p.ch != '"' {
			return nil, p.fail(fmt.Sprintf("expecting key string, got: '%s'", internal.Display(p.ch)))
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		duplicate := ret.Has(key)
		if duplicate && p.config.StrictKeys {
			return nil, p.failWith(ErrDuplicateKey, fmt.Sprintf("key '%s' is not unique", key))
		}
		p.skipWhiteSpace()
		if p.ch != ':' {
			return nil, p.fail(fmt.Sprintf("expecting ':', got: '%s'", internal.Display(p.ch)))
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		ret.put(key, value)
		if duplicate {
			p.logDuplicateKey(key)
		}
		p.skipWhiteSpace()
		switch p.ch {
		case '}':
			return ret, nil
		case ',':
		default:
			return nil, p.fail(fmt.Sprintf("expecting ',' or '}', got: '%s'", internal.Display(p.ch)))
		}
		p.skipWhiteSpace()
	}
}

func (p *Parser) parseValue() (any, error) {
	p.skipWhiteSpace()
	switch p.ch {
	case internal.EOF:
		return nil, p.fail("unexpected end of stream")
	case '"':
		return p.parseString()
	case '[':
		return p.parseArray()
	case '{':
		return p.parseObject()
	case 't':
		return p.parseKeyword("true", true)
	case 'f':
		return p.parseKeyword("false", false)
	case 'n':
		return p.parseKeyword("null", nil)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.parseNumber()
	default:
		return nil, p.fail(fmt.Sprintf("unexpected character: '%s'", internal.Display(p.ch)))
	}
}

func (p *Parser) parseKeyword(keyword string, value any) (any, error) {
	for i, k := range keyword {
		if i > 0 {
			p.next()
		}
		if p.ch != k {
			if p.ch == internal.EOF {
				return nil, p.fail(fmt.Sprintf("encountered end of stream while parsing keyword '%s'", keyword))
			}
			return nil, p.fail(fmt.Sprintf("invalid character '%s' while parsing keyword '%s'", internal.Display(p.ch), keyword))
		}
	}
	return value, nil
}

// parseString reads a string body after its opening quote. Plain characters
// collect in the fixed buffer; the builder is only allocated once an escape
// sequence or a buffer overflow forces a flush.
func (p *Parser) parseString() (string, error) {
	p.pos = 0
	var builder *strings.Builder
	flush := func(runes []rune) {
		if builder == nil {
			builder = &strings.Builder{}
			builder.Grow(max(2*len(runes), 16))
		}
		for _, r := range runes {
			builder.WriteRune(r)
		}
	}

	for {
		for p.pos < len(p.buffer) {
			c := p.next()
			p.buffer[p.pos] = c
			p.pos++
			switch {
			case c == '"':
				if builder == nil {
					return string(p.buffer[:p.pos-1]), nil
				}
				flush(p.buffer[:p.pos-1])
				return builder.String(), nil
			case c == '\\':
				flush(p.buffer[:p.pos-1])
				p.pos = 0
				r, err := p.parseEscapeSequence()
				if err != nil {
					return "", err
				}
				switch {
				case internal.IsHighSurrogate(r):
					if p.next() != '\\' {
						return "", p.fail("low surrogate escape sequence expected")
					}
					low, err := p.parseEscapeSequence()
					if err != nil {
						return "", err
					}
					if !internal.IsLowSurrogate(low) {
						return "", p.fail("low surrogate escape sequence expected")
					}
					builder.WriteRune(utf16.DecodeRune(r, low))
				case internal.IsLowSurrogate(r):
					return "", p.fail("lone low surrogate escape sequence unexpected")
				default:
					builder.WriteRune(r)
				}
			case c == internal.EOF:
				return "", p.fail("unterminated string")
			case c < ' ':
				return "", p.fail("unescaped control character")
			}
		}
		flush(p.buffer[:p.pos])
		p.pos = 0
	}
}

// parseEscapeSequence decodes the escape following a backslash into one
// UTF-16 code unit
func (p *Parser) parseEscapeSequence() (rune, error) {
	switch p.next() {
	case internal.EOF:
		return 0, p.fail("unterminated escape sequence")
	case 'u':
		var result rune
		for i := 0; i < 4; i++ {
			c := p.next()
			if c == internal.EOF {
				return 0, p.fail("unterminated escape sequence")
			}
			result <<= 4
			switch {
			case c >= '0' && c <= '9':
				result += c - '0'
			case c >= 'a' && c <= 'f':
				result += c - 'a' + 10
			case c >= 'A' && c <= 'F':
				result += c - 'A' + 10
			default:
				return 0, p.fail("malformed escape sequence")
			}
		}
		return result, nil
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'n':
		return '\n', nil
	case 'f':
		return '\f', nil
	case 'r':
		return '\r', nil
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	default:
		return 0, p.fail("unknown escape sequence")
	}
}
