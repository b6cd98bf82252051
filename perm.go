package cubecipher

import (
	"fmt"
	"strings"
)

// Facets is the number of facet positions on the cube surface.
const Facets = 54

// Perm is a permutation of facet positions. Perm[p] is the position the
// facet at p moves to, so applying it to an array sets new[Perm[p]] = old[p].
type Perm [Facets]uint8

// Identity returns the permutation that moves nothing.
func Identity() Perm {
	var p Perm
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// permFromCycles builds a permutation from disjoint cycles. A cycle
// {a, b, c, d} moves the facet at a to b, b to c, c to d and d to a.
func permFromCycles(cycles ...[]int) Perm {
	p := Identity()
	for _, c := range cycles {
		for i, from := range c {
			p[from] = uint8(c[(i+1)%len(c)])
		}
	}
	return p
}

// Then returns the permutation that applies p and then q.
func (p Perm) Then(q Perm) Perm {
	var r Perm
	for i := range p {
		r[i] = q[p[i]]
	}
	return r
}

// Inverse returns the permutation that undoes p.
func (p Perm) Inverse() Perm {
	var r Perm
	for i, to := range p {
		r[to] = uint8(i)
	}
	return r
}

// Pow returns p applied n times. Negative n applies the inverse.
func (p Perm) Pow(n int) Perm {
	if n < 0 {
		p = p.Inverse()
		n = -n
	}
	r := Identity()
	for ; n > 0; n-- {
		r = r.Then(p)
	}
	return r
}

// IsIdentity reports whether p moves nothing.
func (p Perm) IsIdentity() bool {
	return p.Moved() == 0
}

// Moved returns the number of positions p does not fix.
func (p Perm) Moved() int {
	n := 0
	for i, to := range p {
		if int(to) != i {
			n++
		}
	}
	return n
}

// Validate checks that p is a bijection over the facet positions.
func (p Perm) Validate() error {
	var seen [Facets]bool
	for i, to := range p {
		if int(to) >= Facets {
			return fmt.Errorf("position %d maps outside the cube (%d)", i, to)
		}
		if seen[to] {
			return fmt.Errorf("position %d is the image of two positions", to)
		}
		seen[to] = true
	}
	return nil
}

// Cycles returns the non-trivial cycles of p, each starting at its smallest
// position, ordered by that position.
func (p Perm) Cycles() [][]int {
	var visited [Facets]bool
	var cycles [][]int
	for start := range p {
		if visited[start] || int(p[start]) == start {
			continue
		}
		var c []int
		for i := start; !visited[i]; i = int(p[i]) {
			visited[i] = true
			c = append(c, i)
		}
		cycles = append(cycles, c)
	}
	return cycles
}

// String formats p in cycle notation, e.g. "(0 2 8 6)(1 5 7 3)".
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, c := range cycles {
		b.WriteByte('(')
		for i, pos := range c {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", pos)
		}
		b.WriteByte(')')
	}
	return b.String()
}

// permute applies p to src and writes the result to dst. dst and src must
// not alias.
func permute[T any](p *Perm, dst, src *[Facets]T) {
	for i := range src {
		dst[p[i]] = src[i]
	}
}
