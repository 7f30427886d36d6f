package uri

import (
	"testing"

	"github.com/kpumuk/urispan/internal/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	t.Parallel()

	want := []string{"scheme", "user-info", "host", "port", "path", "query", "fragment"}
	var got []string
	for _, k := range Kinds() {
		got = append(got, k.String())
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "uri", KindNone.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := map[string]Kind{
		"scheme":    KindScheme,
		"user-info": KindUserInfo,
		"userinfo":  KindUserInfo,
		"USER_INFO": KindUserInfo,
		" host ":    KindHost,
		"Fragment":  KindFragment,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("authority")
	assert.Error(t, err)
	_, err = ParseKind("uri")
	assert.Error(t, err)
}

func TestPartEmptyVersusAbsent(t *testing.T) {
	t.Parallel()

	buf := NewBuffer("s://")
	empty, err := NewSpan(buf, text.Span{Start: 4, End: 4})
	require.NoError(t, err)

	present := Some(empty)
	assert.True(t, present.Present())
	assert.Equal(t, 0, present.Len())

	var absent Part
	assert.False(t, absent.Present())
	assert.Equal(t, "", absent.Text())
	_, ok := absent.Span()
	assert.False(t, ok)
}

func TestPartsGetUnknownKind(t *testing.T) {
	t.Parallel()

	p := Parse("http://h/").Parts()
	assert.False(t, p.Get(KindNone).Present())
	assert.False(t, p.Get(Kind(99)).Present())
}

func TestPartsValidate(t *testing.T) {
	t.Parallel()

	buf := NewBuffer("http://host/path")
	other := NewBuffer("http://host/path")

	tests := map[string]struct {
		parts Parts
		code  ErrorCode
	}{
		"ordered": {
			parts: partsAt(t, buf, map[Kind]text.Span{
				KindScheme: {Start: 0, End: 4},
				KindHost:   {Start: 7, End: 11},
				KindPath:   {Start: 11, End: 16},
			}),
		},
		"empty spans may touch": {
			parts: partsAt(t, buf, map[Kind]text.Span{
				KindHost: {Start: 11, End: 11},
				KindPort: {Start: 11, End: 11},
				KindPath: {Start: 11, End: 16},
			}),
		},
		"overlap": {
			parts: partsAt(t, buf, map[Kind]text.Span{
				KindHost: {Start: 7, End: 12},
				KindPath: {Start: 11, End: 16},
			}),
			code: ErrSpanOrder,
		},
		"reversed": {
			parts: partsAt(t, buf, map[Kind]text.Span{
				KindScheme: {Start: 7, End: 11},
				KindPath:   {Start: 0, End: 4},
			}),
			code: ErrSpanOrder,
		},
		"foreign": {
			parts: partsAt(t, other, map[Kind]text.Span{
				KindPath: {Start: 0, End: 4},
			}),
			code: ErrForeignSpan,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := tc.parts.Validate(buf)
			if tc.code == "" {
				require.NoError(t, err)
				return
			}
			code, ok := CodeOf(err)
			require.True(t, ok, "err = %v", err)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestPartsReassembleWithoutSplit(t *testing.T) {
	t.Parallel()

	buf := NewBuffer("hostuserx")
	p := partsAt(t, buf, map[Kind]text.Span{
		KindUserInfo: {Start: 4, End: 8},
		KindHost:     {Start: 0, End: 4},
		KindFragment: {Start: 8, End: 9},
	})
	assert.Equal(t, "//user@host#x", p.Reassemble())
	assert.Equal(t, "", Parts{}.Reassemble())
}

func TestPartsEqualText(t *testing.T) {
	t.Parallel()

	a := Parse("http://h/p").Parts()
	b := Parse("http://h/p").Parts()
	c := Parse("http://h/q").Parts()
	d := Parse("http://h/p?").Parts()

	assert.True(t, a.EqualText(b))
	assert.False(t, a.EqualText(c))
	assert.False(t, a.EqualText(d), "empty query is still a query")
}
