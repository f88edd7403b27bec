// Package similarity implements the Ratcliff/Obershelp string similarity ratio
// used for fuzzy skill matching.
package similarity

import "sort"

// Block is a run of Size equal runes starting at A in the first string and B in the second.
type Block struct {
	A    int
	B    int
	Size int
}

// Ratio returns 2*M / (len(a)+len(b)) where M is the number of runes covered by
// the recursively found longest matching blocks. Two empty strings are identical (1.0).
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	matches := 0
	for _, blk := range matchingBlocks(ra, rb) {
		matches += blk.Size
	}
	return 2.0 * float64(matches) / float64(total)
}

// MatchingBlocks returns the matching blocks of a and b ordered by position in a.
// Positions are rune offsets.
func MatchingBlocks(a, b string) []Block {
	return matchingBlocks([]rune(a), []rune(b))
}

func matchingBlocks(a, b []rune) []Block {
	type span struct{ alo, ahi, blo, bhi int }

	var blocks []Block
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, k := longestMatch(a, b, s.alo, s.ahi, s.blo, s.bhi)
		if k == 0 {
			continue
		}
		blocks = append(blocks, Block{A: i, B: j, Size: k})
		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+k < s.ahi && j+k < s.bhi {
			queue = append(queue, span{i + k, s.ahi, j + k, s.bhi})
		}
	}

	sort.Slice(blocks, func(x, y int) bool {
		return blocks[x].A < blocks[y].A
	})
	return blocks
}

// longestMatch finds the longest common run in a[alo:ahi] and b[blo:bhi].
// Ties go to the block that starts earliest in a, then earliest in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj = alo, blo

	// runs[x] is the length of the common run ending at a[i-1], b[blo+x-1]
	width := bhi - blo + 1
	prev := make([]int, width)
	cur := make([]int, width)
	for i := alo; i < ahi; i++ {
		for j := blo; j < bhi; j++ {
			x := j - blo + 1
			if a[i] != b[j] {
				cur[x] = 0
				continue
			}
			k := prev[x-1] + 1
			cur[x] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		prev, cur = cur, prev
	}
	return besti, bestj, bestk
}
