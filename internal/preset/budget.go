package preset

// budget tracks remaining points. spent()+left == limit holds after every call.
type budget struct {
	limit int
	left  int
}

func newBudget(limit int) *budget {
	if limit < 0 {
		limit = 0
	}
	return &budget{limit: limit, left: limit}
}

func (b *budget) canAfford(cost int) bool { return cost > 0 && cost <= b.left }

func (b *budget) maxAffordable(cost int) int {
	if cost <= 0 {
		return 0
	}
	return b.left / cost
}

func (b *budget) spend(cost int) {
	if cost <= 0 {
		return
	}
	b.left -= cost
	if b.left < 0 {
		b.left = 0
	}
}

func (b *budget) exhausted() bool { return b.left == 0 }
func (b *budget) spent() int      { return b.limit - b.left }

// typeCounter caps how many instances of one type key may be chosen.
type typeCounter struct {
	limit  int
	counts map[string]int
}

func newTypeCounter(limit int) *typeCounter {
	if limit < 0 {
		limit = 0
	}
	return &typeCounter{limit: limit, counts: map[string]int{}}
}

func (c *typeCounter) count(typeKey string) int { return c.counts[typeKey] }

func (c *typeCounter) remaining(typeKey string) int {
	r := c.limit - c.counts[typeKey]
	if r < 0 {
		return 0
	}
	return r
}

func (c *typeCounter) canAdd(typeKey string) bool { return c.counts[typeKey] < c.limit }

func (c *typeCounter) add(typeKey string, n int) {
	if n <= 0 {
		return
	}
	c.counts[typeKey] = min(c.limit, c.counts[typeKey]+n)
}
