package uri

import (
	"testing"

	"github.com/kpumuk/urispan/internal/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferCopiesInput(t *testing.T) {
	t.Parallel()

	src := []byte("http://a")
	buf := NewBufferBytes(src)
	src[0] = 'X'
	assert.Equal(t, "http://a", buf.String())

	out := buf.Bytes()
	out[0] = 'Y'
	assert.Equal(t, "http://a", buf.String())
}

func TestBufferCopyIsNewStorage(t *testing.T) {
	t.Parallel()

	a := NewBuffer("urn:x")
	b := a.Copy()
	assert.NotSame(t, a, b)
	assert.Equal(t, a.String(), b.String())
	assert.NotSame(t, &a.data[0], &b.data[0])
}

func TestNilBuffer(t *testing.T) {
	t.Parallel()

	var b *Buffer
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
	assert.Nil(t, b.Bytes())
	assert.Equal(t, 0, b.Copy().Len())
}

func TestNewSpan(t *testing.T) {
	t.Parallel()

	buf := NewBuffer("http://host")
	s, err := NewSpan(buf, text.Span{Start: 7, End: 11})
	require.NoError(t, err)
	assert.Equal(t, "host", s.Text())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, `[7,11)"host"`, s.String())

	_, err = NewSpan(buf, text.Span{Start: 7, End: 12})
	assert.Error(t, err)
	_, err = NewSpan(nil, text.Span{})
	assert.Error(t, err)
}

func TestSpanIdentity(t *testing.T) {
	t.Parallel()

	a := NewBuffer("same")
	b := NewBuffer("same")
	s, err := NewSpan(a, text.Span{Start: 0, End: 4})
	require.NoError(t, err)

	assert.True(t, s.In(a))
	assert.False(t, s.In(b), "equal content is not the same buffer")
	assert.False(t, Span{}.In(nil))
	assert.Equal(t, "", Span{}.Text())
}
