package termgrid

// resolve turns constraints into sizes along one axis. measure is consulted
// only for Min, Max and MinMax children. Fill children share whatever the
// others leave of avail in proportion to their weights; when there are no
// fill children the returned leftover is the unused space.
func resolve(cs []Constraint, avail int, measure func(i int) int) (sizes []int, leftover int) {
	sizes = make([]int, len(cs))
	consumed := 0
	var fillIdx, weights []int
	for i, c := range cs {
		switch c.Kind {
		case KindLength:
			sizes[i] = c.A
		case KindPercent:
			sizes[i] = avail * c.A / 100
		case KindMin:
			sizes[i] = max(measure(i), c.A)
		case KindMax:
			sizes[i] = min(measure(i), c.A)
		case KindMinMax:
			sizes[i] = min(max(measure(i), c.A), c.B)
		case KindFill:
			fillIdx = append(fillIdx, i)
			weights = append(weights, c.A)
			continue
		}
		consumed += sizes[i]
	}

	leftover = subSat(avail, consumed)
	if len(fillIdx) == 0 {
		return sizes, leftover
	}
	for j, share := range distribute(leftover, weights) {
		sizes[fillIdx[j]] = share
	}
	return sizes, 0
}

// resolveUnits resolves grid and table units against avail.
func resolveUnits(units []Unit, avail int) []int {
	cs := make([]Constraint, len(units))
	for i, u := range units {
		cs[i] = u.constraint()
	}
	sizes, _ := resolve(cs, avail, func(int) int { return 0 })
	return sizes
}

// distribute splits total across weights using largest-remainder
// allocation: every share gets floor(total*w/sum), then the cells left over
// go one each to the largest fractional parts, earlier indices first on
// ties. The shares always sum to total. When every weight is zero the space
// is split evenly.
func distribute(total int, weights []int) []int {
	shares := make([]int, len(weights))
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if total <= 0 || len(weights) == 0 {
		return shares
	}
	if sum == 0 {
		weights = make([]int, len(weights))
		for i := range weights {
			weights[i] = 1
		}
		sum = len(weights)
	}

	given := 0
	rems := make([]int, len(weights))
	for i, w := range weights {
		shares[i] = total * w / sum
		rems[i] = total * w % sum
		given += shares[i]
	}
	for left := total - given; left > 0; left-- {
		best := -1
		for i, r := range rems {
			if weights[i] > 0 && (best < 0 || r > rems[best]) {
				best = i
			}
		}
		shares[best]++
		rems[best] = -1
	}
	return shares
}

// offsets returns the running start position of each size.
func offsets(sizes []int) []int {
	out := make([]int, len(sizes))
	pos := 0
	for i, s := range sizes {
		out[i] = pos
		pos += s
	}
	return out
}
