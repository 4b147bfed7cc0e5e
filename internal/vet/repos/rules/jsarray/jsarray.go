// Package jsarray parses the relaxed, JS-flavored array dialect that
// protected-word feeds arrive in: an array of objects, possibly minified,
// possibly preceded by an assignment such as "t.words =" and followed by
// arbitrary trailing text.
//
// Tolerated beyond strict JSON:
//   - line and block comments
//   - unquoted object keys
//   - single-quoted strings
//   - !0 and !1 for true and false, plus undefined for null
//   - trailing commas in objects and arrays
//   - junk before the first array and after its closing bracket
//
// It is a real scanner, not a chain of regex substitutions, so failures
// report an exact position and the surrounding source text.
package jsarray

import (
	"bytes"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// Parse locates the first array in src and parses it as an array of
// objects. Objects are returned in source order as generic maps with
// string, float64, bool, nil, []any, and map[string]any values. Failures
// return a *SyntaxError.
func Parse(src []byte) ([]map[string]any, error) {
	start := findArrayStart(src)
	if start < 0 {
		return nil, newSyntaxError(src, 0, "no array found in input")
	}

	p := &parser{src: src, pos: start + 1} // past '['
	out := make([]map[string]any, 0, 64)
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errorf(p.pos, "unterminated array")
		}
		if p.src[p.pos] == ']' {
			return out, nil
		}
		elemPos := p.pos
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj, ok := val.(map[string]any)
		if !ok {
			return nil, p.errorf(elemPos, "array element must be an object")
		}
		out = append(out, obj)

		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errorf(p.pos, "unterminated array")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++ // trailing comma before ']' closes on the next pass
		case ']':
			// closed on the next pass
		default:
			return nil, p.errorf(p.pos, "expected ',' or ']' in array")
		}
	}
}

// findArrayStart returns the offset of the first '[' that is not inside a
// comment or string literal, or -1 when none exists. This lets the real
// array be found even when leading junk mentions brackets.
func findArrayStart(src []byte) int {
	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '[':
			return i
		case '/':
			if i+1 >= len(src) {
				break
			}
			if src[i+1] == '/' {
				for i < len(src) && src[i] != '\n' {
					i++
				}
			} else if src[i+1] == '*' {
				end := bytes.Index(src[i+2:], []byte("*/"))
				if end < 0 {
					return -1
				}
				i += 2 + end + 1
			}
		case '"', '\'':
			for i++; i < len(src); i++ {
				if src[i] == '\\' {
					i++
					continue
				}
				if src[i] == c {
					break
				}
			}
		}
	}
	return -1
}

type parser struct {
	src []byte
	pos int
}

func (p *parser) errorf(off int, format string, args ...any) *SyntaxError {
	return newSyntaxError(p.src, off, format, args...)
}

// skipSpace advances past whitespace and comments.
func (p *parser) skipSpace() *SyntaxError {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*':
			end := bytes.Index(p.src[p.pos+2:], []byte("*/"))
			if end < 0 {
				return p.errorf(p.pos, "unterminated block comment")
			}
			p.pos += 2 + end + 2
		default:
			return nil
		}
	}
	return nil
}

func (p *parser) parseValue() (any, *SyntaxError) {
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.pos >= len(p.src) {
		return nil, p.errorf(p.pos, "unexpected end of input")
	}
	switch c := p.src[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"' || c == '\'':
		return p.parseString()
	case c == '!':
		return p.parseBangBool()
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.parseNumber()
	case isIdentStart(c):
		return p.parseIdentValue()
	default:
		return nil, p.errorf(p.pos, "unexpected character %q", string(c))
	}
}

func (p *parser) parseObject() (any, *SyntaxError) {
	obj := make(map[string]any)
	p.pos++ // past '{'
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errorf(p.pos, "unterminated object")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return obj, nil
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return nil, p.errorf(p.pos, "expected ':' after object key %q", key)
		}
		p.pos++
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj[key] = val

		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errorf(p.pos, "unterminated object")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++ // trailing comma before '}' closes on the next pass
		case '}':
			// closed on the next pass
		default:
			return nil, p.errorf(p.pos, "expected ',' or '}' in object")
		}
	}
}

// parseKey accepts a quoted string or a bare JS identifier as an object key.
func (p *parser) parseKey() (string, *SyntaxError) {
	c := p.src[p.pos]
	if c == '"' || c == '\'' {
		return p.parseString()
	}
	if !isIdentStart(c) {
		return "", p.errorf(p.pos, "expected object key")
	}
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos]), nil
}

func (p *parser) parseArray() (any, *SyntaxError) {
	out := []any{}
	p.pos++ // past '['
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errorf(p.pos, "unterminated array")
		}
		if p.src[p.pos] == ']' {
			p.pos++
			return out, nil
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, val)

		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errorf(p.pos, "unterminated array")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
		default:
			return nil, p.errorf(p.pos, "expected ',' or ']' in array")
		}
	}
}

func (p *parser) parseString() (string, *SyntaxError) {
	quote := p.src[p.pos]
	start := p.pos
	p.pos++
	var sb bytes.Buffer
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; c {
		case quote:
			p.pos++
			return sb.String(), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return "", p.errorf(start, "unterminated string")
			}
			switch e := p.src[p.pos]; e {
			case 'n':
				sb.WriteByte('\n')
				p.pos++
			case 't':
				sb.WriteByte('\t')
				p.pos++
			case 'r':
				sb.WriteByte('\r')
				p.pos++
			case 'b':
				sb.WriteByte('\b')
				p.pos++
			case 'f':
				sb.WriteByte('\f')
				p.pos++
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				sb.WriteRune(r)
			default:
				// covers \" \' \\ \/ and any other escaped byte
				sb.WriteByte(e)
				p.pos++
			}
		case '\n':
			return "", p.errorf(start, "unterminated string")
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf(start, "unterminated string")
}

// parseUnicodeEscape decodes \uXXXX with p.pos at the 'u', pairing
// surrogates when a second escape follows.
func (p *parser) parseUnicodeEscape() (rune, *SyntaxError) {
	escPos := p.pos - 1
	p.pos++
	r1, err := p.readHex4(escPos)
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(r1) {
		if p.pos+1 < len(p.src) && p.src[p.pos] == '\\' && p.src[p.pos+1] == 'u' {
			save := p.pos
			p.pos += 2
			r2, err := p.readHex4(save)
			if err != nil {
				return 0, err
			}
			if dec := utf16.DecodeRune(r1, r2); dec != utf8.RuneError {
				return dec, nil
			}
			p.pos = save // second escape stands alone
		}
		return utf8.RuneError, nil
	}
	return r1, nil
}

func (p *parser) readHex4(errPos int) (rune, *SyntaxError) {
	if p.pos+4 > len(p.src) {
		return 0, p.errorf(errPos, "invalid unicode escape")
	}
	v, err := strconv.ParseUint(string(p.src[p.pos:p.pos+4]), 16, 32)
	if err != nil {
		return 0, p.errorf(errPos, "invalid unicode escape")
	}
	p.pos += 4
	return rune(v), nil
}

// parseBangBool handles the minifier booleans: !0 is true, !1 is false.
func (p *parser) parseBangBool() (any, *SyntaxError) {
	start := p.pos
	p.pos++
	if p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '0':
			p.pos++
			return true, nil
		case '1':
			p.pos++
			return false, nil
		}
	}
	return nil, p.errorf(start, "unexpected character %q", "!")
}

func (p *parser) parseNumber() (any, *SyntaxError) {
	start := p.pos
	if c := p.src[p.pos]; c == '-' || c == '+' {
		p.pos++
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isDigit(c) || c == '.' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		if (c == '+' || c == '-') && (p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E') {
			p.pos++
			continue
		}
		break
	}
	tok := string(p.src[start:p.pos])
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, p.errorf(start, "invalid number %q", tok)
	}
	return f, nil
}

func (p *parser) parseIdentValue() (any, *SyntaxError) {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	switch tok := string(p.src[start:p.pos]); tok {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null", "undefined":
		return nil, nil
	default:
		return nil, p.errorf(start, "unexpected identifier %q", tok)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
