package gcode

import (
	"strconv"
	"strings"
)

// Word is a single letter-plus-argument token of a command line.
type Word struct {
	W   byte
	Arg float64
}

func (w Word) IsAxis() bool {
	switch w.W {
	case 'X', 'Y', 'Z': // maybe someday 'A', 'B', 'C', 'U', 'V', 'W':
		return true
	}
	return false
}

func (w Word) IsValid() bool {
	return w.W >= 'A' && w.W <= 'Z'
}

func formatFloat(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
	}
	return strings.TrimRight(s, ".")
}

// String renders the word in the emit grammar: command words carry a
// zero-padded two-digit code, axis words exactly 4 decimals, the feed
// word exactly 2.
func (w Word) String() string {
	switch {
	case w.W == 'G' || w.W == 'M':
		s := strconv.Itoa(int(w.Arg))
		if len(s) < 2 {
			s = "0" + s
		}
		return string(w.W) + s
	case w.IsAxis():
		return string(w.W) + strconv.FormatFloat(w.Arg, 'f', 4, 64)
	case w.W == 'F':
		return string(w.W) + strconv.FormatFloat(w.Arg, 'f', 2, 64)
	}
	return string(w.W) + formatFloat(w.Arg, 3)
}

// Block is a single line of words.
type Block []Word

// Arg returns the argument of the first word with the given letter.
func (b Block) Arg(w byte) (bool, float64) {
	for _, g := range b {
		if g.W == w {
			return true, g.Arg
		}
	}
	return false, 0
}

func (b Block) String() string {
	strs := make([]string, len(b))
	for i, g := range b {
		strs[i] = g.String()
	}
	return strings.Join(strs, " ")
}
