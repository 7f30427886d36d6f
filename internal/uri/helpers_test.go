package uri

import (
	"testing"

	"github.com/kpumuk/urispan/internal/text"
	"github.com/stretchr/testify/require"
)

// partsAt builds Parts over buf from explicit byte ranges.
func partsAt(t testing.TB, buf *Buffer, spans map[Kind]text.Span) Parts {
	t.Helper()
	var p Parts
	for k, rng := range spans {
		s, err := NewSpan(buf, rng)
		require.NoError(t, err, "kind %s", k)
		*p.slot(k) = Some(s)
	}
	return p
}

// partTexts returns present component text keyed by component name.
func partTexts(p Parts) map[string]string {
	out := make(map[string]string)
	for _, k := range p.Present() {
		out[k.String()] = p.Get(k).Text()
	}
	return out
}

func requireSameShape(t testing.TB, want, got Parts) {
	t.Helper()
	require.Equal(t, want.Present(), got.Present(), "presence pattern")
	require.Equal(t, partTexts(want), partTexts(got), "component text")
}
