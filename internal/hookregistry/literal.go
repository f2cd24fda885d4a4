package hookregistry

import (
	"fmt"
	"strconv"
	"strings"
)

// phpArray is a decoded array literal. Keys are nil for positional items.
type phpArray struct {
	items []arrayItem
}

type arrayItem struct {
	key   any
	value any
}

func (a *phpArray) list() bool {
	for _, it := range a.items {
		if it.key != nil {
			return false
		}
	}
	return true
}

func (a *phpArray) get(key string) (any, bool) {
	for _, it := range a.items {
		if k, ok := it.key.(string); ok && k == key {
			return it.value, true
		}
	}
	return nil, false
}

// literalDecoder reads the constant-expression subset of PHP used in
// Config.php: strings, numbers, booleans, null, nested arrays, `=>` keys,
// `.` concatenation and __NAMESPACE__.
type literalDecoder struct {
	src       string
	pos       int
	namespace string
}

type syntaxError struct {
	Offset int
	Msg    string
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

func (d *literalDecoder) fail(format string, args ...any) error {
	return &syntaxError{Offset: d.pos, Msg: fmt.Sprintf(format, args...)}
}

// decodeValue decodes one expression starting at the current position.
func (d *literalDecoder) decodeValue() (any, error) {
	v, err := d.decodeTerm()
	if err != nil {
		return nil, err
	}
	for {
		d.skip()
		if !d.peek(".") {
			return v, nil
		}
		d.pos++
		rhs, err := d.decodeTerm()
		if err != nil {
			return nil, err
		}
		l, lok := scalarString(v)
		r, rok := scalarString(rhs)
		if !lok || !rok {
			return nil, d.fail("cannot concatenate an array")
		}
		v = l + r
	}
}

func (d *literalDecoder) decodeTerm() (any, error) {
	d.skip()
	if d.pos >= len(d.src) {
		return nil, d.fail("unexpected end of input")
	}

	switch c := d.src[d.pos]; {
	case c == '[':
		d.pos++
		return d.decodeArray("]")
	case c == '\'':
		return d.decodeSingleQuoted()
	case c == '"':
		return d.decodeDoubleQuoted()
	case c == '-' || c == '+' || isDigit(c):
		return d.decodeNumber()
	case isIdentStart(c):
		ident := d.ident()
		switch strings.ToLower(ident) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "null":
			return nil, nil
		case "array":
			d.skip()
			if !d.peek("(") {
				return nil, d.fail("expected ( after array")
			}
			d.pos++
			return d.decodeArray(")")
		}
		if ident == "__NAMESPACE__" {
			return d.namespace, nil
		}
		return nil, d.fail("unsupported expression %q", ident)
	default:
		return nil, d.fail("unexpected character %q", c)
	}
}

func (d *literalDecoder) decodeArray(closer string) (any, error) {
	arr := &phpArray{}
	for {
		d.skip()
		if d.peek(closer) {
			d.pos++
			return arr, nil
		}

		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		item := arrayItem{value: v}

		d.skip()
		if d.peek("=>") {
			d.pos += 2
			switch k := v.(type) {
			case string, int64:
				item.key = k
			default:
				return nil, d.fail("illegal array key %v", v)
			}
			if item.value, err = d.decodeValue(); err != nil {
				return nil, err
			}
		}
		arr.items = append(arr.items, item)

		d.skip()
		switch {
		case d.peek(","):
			d.pos++
		case d.peek(closer):
		default:
			return nil, d.fail("expected , or %s", closer)
		}
	}
}

func (d *literalDecoder) decodeSingleQuoted() (any, error) {
	start := d.pos
	d.pos++
	var b strings.Builder
	for d.pos < len(d.src) {
		c := d.src[d.pos]
		switch {
		case c == '\'':
			d.pos++
			return b.String(), nil
		case c == '\\' && d.pos+1 < len(d.src) && (d.src[d.pos+1] == '\'' || d.src[d.pos+1] == '\\'):
			b.WriteByte(d.src[d.pos+1])
			d.pos += 2
		default:
			b.WriteByte(c)
			d.pos++
		}
	}
	d.pos = start
	return nil, d.fail("unterminated string")
}

func (d *literalDecoder) decodeDoubleQuoted() (any, error) {
	start := d.pos
	d.pos++
	var b strings.Builder
	for d.pos < len(d.src) {
		c := d.src[d.pos]
		switch c {
		case '"':
			d.pos++
			return b.String(), nil
		case '$':
			d.pos = start
			return nil, d.fail("variable interpolation is not supported")
		case '\\':
			if d.pos+1 >= len(d.src) {
				d.pos++
				continue
			}
			next := d.src[d.pos+1]
			switch next {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"', '\\', '$':
				b.WriteByte(next)
			default:
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			d.pos += 2
		default:
			b.WriteByte(c)
			d.pos++
		}
	}
	d.pos = start
	return nil, d.fail("unterminated string")
}

func (d *literalDecoder) decodeNumber() (any, error) {
	start := d.pos
	if d.src[d.pos] == '-' || d.src[d.pos] == '+' {
		d.pos++
	}
	float := false
	for d.pos < len(d.src) {
		c := d.src[d.pos]
		if c == '.' && !float && d.pos+1 < len(d.src) && isDigit(d.src[d.pos+1]) {
			float = true
		} else if !isDigit(c) {
			break
		}
		d.pos++
	}
	text := d.src[start:d.pos]
	if float {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, d.fail("bad number %q", text)
		}
		return f, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, d.fail("bad number %q", text)
	}
	return n, nil
}

func (d *literalDecoder) ident() string {
	start := d.pos
	for d.pos < len(d.src) && (isIdentStart(d.src[d.pos]) || isDigit(d.src[d.pos])) {
		d.pos++
	}
	return d.src[start:d.pos]
}

// skip advances past whitespace and comments.
func (d *literalDecoder) skip() {
	for d.pos < len(d.src) {
		switch {
		case isSpace(d.src[d.pos]):
			d.pos++
		case d.peek("//") || d.peek("#"):
			for d.pos < len(d.src) && d.src[d.pos] != '\n' {
				d.pos++
			}
		case d.peek("/*"):
			end := strings.Index(d.src[d.pos+2:], "*/")
			if end < 0 {
				d.pos = len(d.src)
				return
			}
			d.pos += end + 4
		default:
			return
		}
	}
}

func (d *literalDecoder) peek(s string) bool {
	return strings.HasPrefix(d.src[d.pos:], s)
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		if t {
			return "1", true
		}
		return "", true
	case nil:
		return "", true
	default:
		return "", false
	}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isSpace(c byte) bool      { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v' }
func isIdentStart(c byte) bool { return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// toJSON converts decoded values into the shapes the schema validator
// expects: positional arrays become lists, keyed arrays become objects.
func toJSON(v any) any {
	arr, ok := v.(*phpArray)
	if !ok {
		return v
	}
	if arr.list() {
		out := make([]any, len(arr.items))
		for i, it := range arr.items {
			out[i] = toJSON(it.value)
		}
		return out
	}
	out := make(map[string]any, len(arr.items))
	next := int64(0)
	for _, it := range arr.items {
		var key string
		switch k := it.key.(type) {
		case string:
			key = k
		case int64:
			key = strconv.FormatInt(k, 10)
			next = k + 1
		default:
			key = strconv.FormatInt(next, 10)
			next++
		}
		out[key] = toJSON(it.value)
	}
	return out
}
