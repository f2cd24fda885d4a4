package hookregistry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	d := &literalDecoder{src: src, namespace: `Antonella\ABCDE`}
	v, err := d.decodeValue()
	require.NoError(t, err, src)
	return toJSON(v)
}

func TestLiteralDecoder_Scalars(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{`'init'`, "init"},
		{`'it\'s'`, "it's"},
		{`'\Controllers\Home'`, `\Controllers\Home`},
		{`'a\\b'`, `a\b`},
		{`"line\n"`, "line\n"},
		{`"\\Foo\\Bar"`, `\Foo\Bar`},
		{`42`, int64(42)},
		{`-1`, int64(-1)},
		{`1.5`, 1.5},
		{`true`, true},
		{`FALSE`, false},
		{`null`, nil},
		{`__NAMESPACE__`, `Antonella\ABCDE`},
		{`__NAMESPACE__ . '\Widgets\Clock'`, `Antonella\ABCDE\Widgets\Clock`},
		{`'a' . 1 . "b"`, "a1b"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(t, tt.src))
		})
	}
}

func TestLiteralDecoder_Arrays(t *testing.T) {
	got := decode(t, `[
		// comment
		['init', [__NAMESPACE__ . '\C', 'index'], 10, 1], /* block */
		# hash comment
		array('x' => [], 'y' => array(1, 2,),),
	]`)

	want := []any{
		[]any{"init", []any{`Antonella\ABCDE\C`, "index"}, int64(10), int64(1)},
		map[string]any{"x": []any{}, "y": []any{int64(1), int64(2)}},
	}
	assert.Equal(t, want, got)
}

func TestLiteralDecoder_StopsAtClosingBracket(t *testing.T) {
	d := &literalDecoder{src: `[1, 2];
    public $other = [3];`}
	v, err := d.decodeValue()
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2)}, toJSON(v))
	assert.Equal(t, ";", string(d.src[d.pos]))
}

func TestLiteralDecoder_Errors(t *testing.T) {
	for _, src := range []string{
		`[`,
		`['a' 'b']`,
		`'unterminated`,
		`[get_option('x')]`,
		`["hello $name"]`,
		`[[1] => 2]`,
		`[1] . 'x'`,
		`[\Foo::class]`,
	} {
		d := &literalDecoder{src: src}
		_, err := d.decodeValue()
		assert.Error(t, err, src)
	}
}
