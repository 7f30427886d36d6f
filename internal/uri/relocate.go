package uri

// Relocation walks a buffer once, in component order, using an existing
// Parts only for which components are present and how long they are. Delimiter
// positions follow from presence; the buffer is never scanned for them.

type relocationStep struct {
	kind  Kind
	lead  byte // delimiter before the component, 0 for none
	trail byte // delimiter after the component, 0 for none
}

// Scheme is handled separately: its ':' is optional and it owns the "//"
// authority marker.
var relocationSteps = [...]relocationStep{
	{kind: KindUserInfo, trail: '@'},
	{kind: KindHost},
	{kind: KindPort, lead: ':'},
	{kind: KindPath},
	{kind: KindQuery, lead: '?'},
	{kind: KindFragment, lead: '#'},
}

// Relocate returns parts pointing into buf that mirror existing: the same
// components present, each with the same length. buf must hold the same
// component text, delimiters and order as the buffer existing was derived
// from. Relocation stops at the first violated precondition.
//
// The walk must end exactly at the end of buf: parts that cover only a
// prefix of buf are rejected with ErrTrailingBytes.
func Relocate(buf *Buffer, existing Parts) (Parts, error) {
	var out Parts
	c := NewCursor(buf)

	if existing.Scheme.Present() {
		c.kind = KindScheme
		s, err := c.Take(existing.Scheme.Len())
		if err != nil {
			return Parts{}, err
		}
		out.Scheme = Some(s)

		c.SkipIf(':')
		if existing.Host.Present() {
			c.SkipRun('/')
		}
	}

	for _, step := range relocationSteps {
		part := existing.Get(step.kind)
		if !part.Present() {
			continue
		}
		c.kind = step.kind
		if step.lead != 0 {
			if err := c.Skip(step.lead); err != nil {
				return Parts{}, err
			}
		}
		s, err := c.Take(part.Len())
		if err != nil {
			return Parts{}, err
		}
		if step.trail != 0 {
			if err := c.Skip(step.trail); err != nil {
				return Parts{}, err
			}
		}
		*out.slot(step.kind) = Some(s)
	}

	if n := c.Remaining(); n > 0 {
		return Parts{}, newError(ErrTrailingBytes, KindNone, c.Pos(), "%d bytes left", n)
	}
	return out, nil
}

// AdvanceParts relocates existing onto buf and stores the result in dst.
// dst is left unchanged on error.
func AdvanceParts(buf *Buffer, dst *Parts, existing Parts) error {
	parts, err := Relocate(buf, existing)
	if err != nil {
		return err
	}
	*dst = parts
	return nil
}
