// Package diskmap compacts a disk described by a dense run-length map and
// computes the filesystem checksum of the result.
package diskmap

import (
	"slices"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
)

// Free marks an empty block.
const Free = -1

// Disk is one entry per block: a file id or Free.
type Disk []int

// Parse expands a disk map. Digits alternate between the length of a file and
// the length of the free space that follows it; file ids count up from 0.
func Parse(input string) (Disk, error) {
	text := strings.TrimSpace(input)
	var disk Disk
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return nil, puzzle.LineError(1, text, "unexpected character %q at offset %d", c, i)
		}
		id := Free
		if i%2 == 0 {
			id = i / 2
		}
		for n := int(c - '0'); n > 0; n-- {
			disk = append(disk, id)
		}
	}
	return disk, nil
}

// String renders the disk the usual way: file ids as digits, free blocks as
// dots. Ids above 9 are not representable and render as '?'.
func (d Disk) String() string {
	var b strings.Builder
	for _, id := range d {
		switch {
		case id == Free:
			b.WriteByte('.')
		case id < 10:
			b.WriteByte(byte('0' + id))
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// CompactBlocks moves file blocks one at a time from the end of the disk into
// the leftmost free block until no gaps remain. The receiver is not modified.
func (d Disk) CompactBlocks() Disk {
	out := slices.Clone(d)
	write, read := 0, len(out)-1
	for {
		for write < len(out) && out[write] != Free {
			write++
		}
		for read >= 0 && out[read] == Free {
			read--
		}
		if write >= read {
			return out
		}
		out[write], out[read] = out[read], Free
	}
}

type span struct {
	start, length int
}

// CompactFiles moves whole files, highest id first, into the leftmost span of
// free blocks that can hold them and lies left of the file. Each file is tried
// once. The receiver is not modified.
func (d Disk) CompactFiles() Disk {
	out := slices.Clone(d)

	files := make([]span, slices.Max(append([]int{Free}, out...))+1)
	var free []span
	for i := 0; i < len(out); {
		j := i
		for j < len(out) && out[j] == out[i] {
			j++
		}
		if out[i] == Free {
			free = append(free, span{i, j - i})
		} else {
			files[out[i]] = span{i, j - i}
		}
		i = j
	}

	for id := len(files) - 1; id >= 0; id-- {
		f := files[id]
		if f.length == 0 {
			continue
		}
		for k := range free {
			gap := &free[k]
			if gap.start >= f.start {
				break
			}
			if gap.length < f.length {
				continue
			}
			for n := 0; n < f.length; n++ {
				out[gap.start+n] = id
				out[f.start+n] = Free
			}
			gap.start += f.length
			gap.length -= f.length
			break
		}
	}
	return out
}

// Checksum sums each block's position multiplied by its file id. Free blocks
// contribute nothing.
func (d Disk) Checksum() int {
	sum := 0
	for i, id := range d {
		if id != Free {
			sum += i * id
		}
	}
	return sum
}
