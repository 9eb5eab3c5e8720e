package keywords

import (
	"sort"
	"strings"
)

// stopWords filters boilerplate and template vocabulary out of every
// category. The tail entries cover words the composer itself emits, which
// would otherwise dominate every extraction.
var stopWords = map[string]struct{}{}

func init() {
	list := "the be to of and a in that have i " +
		"it for not on with he as you do at " +
		"this but his by from they we say her she " +
		"or an will my one all would there their " +
		"what so up out if about who get which go " +
		"me when make can like time no just him know " +
		"take people into year your good some could them " +
		"see other than then now look only come its over " +
		"think also back after use two how our work first " +
		"well way even new want because any these give day " +
		"most us is was are been has had were said did " +
		"having may such being through where much should those " +
		"very own while here each does both few under until " +
		"more many must before between same during without however " +
		"why let great since provide every still around another " +
		"came three state never become against last might " +
		"something fact though less public put thing almost hand " +
		"enough far took head yet government system better set " +
		"told nothing end called didn eyes find going made " +
		"part place case point asked seem felt high too " +
		"report article investigation examines comprehensive analysis " +
		"research study findings conclusion background context implications " +
		"developments aspects drawing sources expert observers alike " +
		"stakeholders monitoring situation continues evolve understanding " +
		"dynamics crucial informed decision making strategic planning " +
		"reveals represents complex multifaceted topic requires careful " +
		"consideration multiple perspectives"
	for _, w := range strings.Fields(list) {
		stopWords[w] = struct{}{}
	}
}

func isStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// counter mirrors the ordered counting used by analytics so rankings are
// deterministic under Go's randomized map iteration.
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
