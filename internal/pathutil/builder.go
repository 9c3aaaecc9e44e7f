package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder builds a dotted location such as
// "paths./pets.get.responses.200" one segment at a time.
// The zero value is ready to use.
type PathBuilder struct {
	segments []string
}

// Push adds a key segment. Keys containing a dot are written as ["key"].
func (p *PathBuilder) Push(key string) {
	if strings.Contains(key, ".") {
		p.segments = append(p.segments, "["+strconv.Quote(key)+"]")
		return
	}
	p.segments = append(p.segments, key)
}

// PushIndex adds an array index segment: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	p.segments = append(p.segments, "["+strconv.Itoa(i)+"]")
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
	}
}

// Len returns the number of segments.
func (p *PathBuilder) Len() int {
	return len(p.segments)
}

// Truncate drops segments until n remain.
func (p *PathBuilder) Truncate(n int) {
	if n >= 0 && n < len(p.segments) {
		p.segments = p.segments[:n]
	}
}

// String materializes the location.
func (p *PathBuilder) String() string {
	var b strings.Builder
	for i, seg := range p.segments {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
