package vtscreen

import "testing"

func TestMiddlewareDrawInterceptsBeforeDefault(t *testing.T) {
	var seen []rune
	mw := Middleware{
		Draw: func(r rune, next func(rune)) {
			seen = append(seen, r)
			next(r)
		},
	}
	s := New(1, 4, WithMiddleware(&mw))

	s.Draw('A')
	s.Draw('B')

	if string(seen) != "AB" {
		t.Errorf("expected middleware to observe every draw, got %q", string(seen))
	}
	if got := lineText(t, s, 0); got != "AB" {
		t.Errorf("expected default behavior still applied, got %q", got)
	}
}

func TestMiddlewareCanSuppressDefaultBehavior(t *testing.T) {
	mw := Middleware{
		Bell: func(next func()) {
			// Swallow the bell entirely; never call next.
		},
	}
	sink := &recordingMiscSink{}
	s := New(1, 4, WithMiddleware(&mw), WithSink(sink))

	s.Bell()

	if sink.bellCount != 0 {
		t.Error("expected the middleware to suppress the default Bell behavior")
	}
}

func TestMiddlewareMergeOverridesOnlyNonNilFields(t *testing.T) {
	var drawCalls, bellCalls int
	base := Middleware{
		Draw: func(r rune, next func(rune)) { drawCalls++; next(r) },
		Bell: func(next func()) { bellCalls++; next() },
	}
	override := Middleware{
		Bell: func(next func()) { bellCalls += 10; next() },
	}

	base.Merge(&override)

	s := New(1, 4, WithMiddleware(&base))
	s.Draw('X')
	s.Bell()

	if drawCalls != 1 {
		t.Errorf("expected Draw wrapper preserved by Merge, got %d calls", drawCalls)
	}
	if bellCalls != 10 {
		t.Errorf("expected Bell wrapper replaced by Merge, got %d", bellCalls)
	}
}
