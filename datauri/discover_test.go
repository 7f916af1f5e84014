package datauri

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func drain(t *testing.T, d *Discoverer) []DataURI {
	t.Helper()
	var found []DataURI
	for {
		parsed, err := d.Next()
		if err == io.EOF {
			return found
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		found = append(found, parsed)
	}
}

func TestDiscoverSkipsInvalidMatches(t *testing.T) {
	text := "prefix data:text/plain,ok and data:bad;base64,!!! suffix"
	found := drain(t, NewDiscoverer(text))
	if len(found) != 1 {
		t.Fatalf("found %d URIs, want 1: %v", len(found), found)
	}
	if string(found[0].Data) != "ok" {
		t.Fatalf("data %q, want %q", found[0].Data, "ok")
	}
	if found[0].MediaType != "text/plain" {
		t.Fatalf("media type %q, want text/plain", found[0].MediaType)
	}
}

func TestDiscoverOrder(t *testing.T) {
	text := "a data:,one b data:,two c data:text/plain,three"
	found := drain(t, NewDiscoverer(text))
	if len(found) != 3 {
		t.Fatalf("found %d URIs, want 3", len(found))
	}
	for i, want := range []string{"one", "two", "three"} {
		if string(found[i].Data) != want {
			t.Fatalf("result %d: data %q, want %q", i, found[i].Data, want)
		}
	}
}

func TestDiscoverBarePrefix(t *testing.T) {
	// "data:" followed by no eligible character is not a candidate.
	found := drain(t, NewDiscoverer("data: and data:\n and data:"))
	if len(found) != 0 {
		t.Fatalf("found %d URIs, want 0: %v", len(found), found)
	}
}

func TestDiscoverNoMatches(t *testing.T) {
	if found := drain(t, NewDiscoverer("nothing to see here")); len(found) != 0 {
		t.Fatalf("found %d URIs, want 0", len(found))
	}
	if found := drain(t, NewDiscoverer("")); len(found) != 0 {
		t.Fatalf("found %d URIs in empty input, want 0", len(found))
	}
}

func TestDiscoverSpanIsLongestRun(t *testing.T) {
	// Reserved characters extend the span, so surrounding punctuation that
	// is URI-eligible becomes part of the match.
	found := drain(t, NewDiscoverer("(data:,hi)"))
	if len(found) != 1 {
		t.Fatalf("found %d URIs, want 1", len(found))
	}
	if string(found[0].Data) != "hi)" {
		t.Fatalf("data %q, want %q", found[0].Data, "hi)")
	}
	if found[0].URI != "data:,hi)" {
		t.Fatalf("span %q, want %q", found[0].URI, "data:,hi)")
	}
}

func TestDiscovererReset(t *testing.T) {
	d := NewDiscoverer("x data:,one y data:,two z")
	first := drain(t, d)
	if len(first) != 2 {
		t.Fatalf("first pass found %d, want 2", len(first))
	}
	if _, err := d.Next(); err != io.EOF {
		t.Fatalf("exhausted scanner must keep returning io.EOF, got %v", err)
	}
	d.Reset()
	second := drain(t, d)
	if len(second) != len(first) {
		t.Fatalf("second pass found %d, want %d", len(second), len(first))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("pass results differ at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestDiscoverHandler(t *testing.T) {
	text := "data:,one data:,two data:,three"
	var got []string
	err := Discover(text, func(d DataURI) error {
		got = append(got, string(d.Data))
		return nil
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if strings.Join(got, " ") != "one two three" {
		t.Fatalf("handler saw %v", got)
	}
}

func TestDiscoverHandlerAborts(t *testing.T) {
	stop := errors.New("stop")
	var seen int
	err := Discover("data:,one data:,two", func(DataURI) error {
		seen++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected handler error back, got %v", err)
	}
	if seen != 1 {
		t.Fatalf("handler ran %d times after aborting, want 1", seen)
	}
}

func TestDiscoverAllAgreesWithPull(t *testing.T) {
	text := "data:text/plain,a data:bad;base64,!!! data:;base64,aGVsbG8="
	eager := DiscoverAll(text)
	pull := drain(t, NewDiscoverer(text))
	if len(eager) != len(pull) {
		t.Fatalf("eager found %d, pull found %d", len(eager), len(pull))
	}
	for i := range eager {
		if !eager[i].Equal(pull[i]) {
			t.Fatalf("result %d differs: %v vs %v", i, eager[i], pull[i])
		}
	}
	if len(eager) != 2 {
		t.Fatalf("found %d URIs, want 2", len(eager))
	}
}
