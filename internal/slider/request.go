package slider

import (
	"fmt"
	"strconv"
	"strings"
)

type requestKind int

const (
	numeric requestKind = iota
	start
	end
)

// Request names the item a navigation should move to.
type Request struct {
	kind requestKind
	n    int
}

// At requests item n. Out-of-range values wrap or clamp depending on the
// slider's circle policy.
func At(n int) Request { return Request{kind: numeric, n: n} }

// Start requests the first item.
func Start() Request { return Request{kind: start} }

// End requests the last item.
func End() Request { return Request{kind: end} }

func (r Request) String() string {
	switch r.kind {
	case start:
		return "start"
	case end:
		return "end"
	default:
		return strconv.Itoa(r.n)
	}
}

// ParseRequest accepts "start", "end" or an integer.
func ParseRequest(s string) (Request, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return Start(), nil
	case "end":
		return End(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Request{}, fmt.Errorf("invalid slide request %q: want start, end or an index", s)
	}
	return At(n), nil
}

// ParsePosition is ParseRequest for people: numbers are 1-based positions
// as shown in "2/5", so "1" is the first item.
func ParsePosition(s string) (Request, error) {
	r, err := ParseRequest(s)
	if err != nil || r.kind != numeric {
		return r, err
	}
	if r.n < 1 {
		return Request{}, fmt.Errorf("invalid slide position %d: positions start at 1", r.n)
	}
	return At(r.n - 1), nil
}
