package compose

import "golang.org/x/sync/errgroup"

// forEach calls fn for every index in [0, n). With limit > 0 the calls run
// on at most limit goroutines and forEach waits for all of them; fn must
// only write to its own index.
func forEach(limit, n int, fn func(i int)) {
	if limit <= 0 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
