package lsystem

import (
	"github.com/go-text/typesetting/segmenter"
)

// scanner splits strings into symbols. The zero value is ready to use and
// reuses its segmentation buffers across calls.
type scanner struct {
	seg segmenter.Segmenter
}

// each calls fn for every symbol of s, in order, until fn returns false.
func (sc *scanner) each(s string, fn func(sym string) bool) {
	if isSimple(s) {
		for i := 0; i < len(s); i++ {
			if !fn(s[i : i+1]) {
				return
			}
		}
		return
	}

	sc.seg.InitWithString(s)
	it := sc.seg.GraphemeIterator()
	for it.Next() {
		if !fn(string(it.Grapheme().Text)) {
			return
		}
	}
}

// isSimple reports whether every byte of s is its own grapheme cluster:
// ASCII without carriage returns (CR LF forms a single cluster).
func isSimple(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 0x80 || c == '\r' {
			return false
		}
	}
	return true
}

// Symbols splits s into symbols (grapheme clusters).
func Symbols(s string) []string {
	var out []string
	var sc scanner
	sc.each(s, func(sym string) bool {
		out = append(out, sym)
		return true
	})
	return out
}

// Walk calls fn for each symbol of s in order and stops at the first error,
// which it returns.
//
// Walk is the usual way to drive a turtle from an expanded string:
//
//	err := lsystem.Walk(s, func(sym string) error {
//	    switch sym {
//	    case "F":
//	        t.Forward(4)
//	    case "+":
//	        return t.Rotate(angle)
//	    case "[":
//	        return t.Push()
//	    case "]":
//	        return t.Pop()
//	    }
//	    return nil
//	})
func Walk(s string, fn func(sym string) error) error {
	var (
		sc  scanner
		err error
	)
	sc.each(s, func(sym string) bool {
		err = fn(sym)
		return err == nil
	})
	return err
}
