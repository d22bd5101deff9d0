package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// Len returns the document length in points: clusters plus line breaks.
func (b *Buffer) Len() int {
	total := 0
	for _, line := range b.lines {
		total += len(line)
	}
	return total + len(b.lines) - 1
}

// PointFromPos returns the point of p after clamping it into bounds.
func (b *Buffer) PointFromPos(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + p.Col
}

// PosFromPoint returns the position of pt after clamping it into [0, Len].
func (b *Buffer) PosFromPoint(pt int) Pos {
	pt, _ = clampOffset(pt, b.Len(), OffsetClamp)
	for row, line := range b.lines {
		if pt <= len(line) {
			return Pos{Row: row, Col: pt}
		}
		pt -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

// PosFromRuneOffset converts a rune offset, where a line break counts as one
// rune. Offsets landing inside a multi-rune cluster are rejected.
func (b *Buffer) PosFromRuneOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.docRuneLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.runeOffsetToPos(off)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToRuneOffset(pos), true
}

func clampOffset(off, hi int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > hi {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, hi), true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		if b.clampPos(pos) != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) docRuneLen() int {
	total := 0
	for _, line := range b.lines {
		for _, cluster := range line {
			total += utf8.RuneCountInString(cluster)
		}
	}
	return total + len(b.lines) - 1
}

func (b *Buffer) runeOffsetToPos(off int) (Pos, bool) {
	cur := 0
	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row, Col: 0}, true
		}
		for col, cluster := range line {
			next := cur + utf8.RuneCountInString(cluster)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, Col: col + 1}, true
			}
		}
		cur++
	}
	return Pos{}, false
}

func (b *Buffer) posToRuneOffset(pos Pos) int {
	off := 0
	for row := 0; row < pos.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += utf8.RuneCountInString(cluster)
		}
		off++
	}
	for col := 0; col < pos.Col; col++ {
		off += utf8.RuneCountInString(b.lines[pos.Row][col])
	}
	return off
}
