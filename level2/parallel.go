// SPDX-License-Identifier: MIT

package level2

import "golang.org/x/sync/errgroup"

// forRows runs body over [0, rows) either inline or as contiguous row
// blocks on up to o.workers goroutines. Blocks are disjoint; forRows returns
// after every block has finished. body cannot fail, so the group's error is
// always nil; errgroup is used for its SetLimit and Wait.
func forRows(o Options, rows, work int, body func(lo, hi int)) {
	if o.workers <= 1 || rows < 2 || work < o.threshold {
		body(0, rows)
		return
	}
	w := min(o.workers, rows)
	chunk := (rows + w - 1) / w

	var g errgroup.Group
	g.SetLimit(w)
	for lo := 0; lo < rows; lo += chunk {
		lo := lo
		hi := min(lo+chunk, rows)
		g.Go(func() error {
			body(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // every block returns nil
}
