package analytics

import "sort"

// counter tallies keys while remembering first-seen order, so frequency
// rankings break ties deterministically instead of following map iteration.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

type entry struct {
	key   string
	count int
}

// mostCommon returns up to n entries sorted by descending count; equal
// counts keep first-seen order.
func (c *counter) mostCommon(n int) []entry {
	out := make([]entry, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, entry{key: k, count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].count > out[j].count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
