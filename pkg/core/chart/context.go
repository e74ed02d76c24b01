package chart

// SeriesContext assigns column positions to bar series. Bar series that
// scale on the same X axis share each category's width; series that
// ignore column position are left out and take the full width.
type SeriesContext struct {
	positions map[Series]int
	counts    map[int]int
}

// NewSeriesContext registers the bar series in series, in order.
func NewSeriesContext(series []Series) *SeriesContext {
	sc := &SeriesContext{
		positions: make(map[Series]int),
		counts:    make(map[int]int),
	}
	for _, s := range series {
		if !participates(s) {
			continue
		}
		axis := s.ScalesXAt()
		sc.positions[s] = sc.counts[axis]
		sc.counts[axis]++
	}
	return sc
}

func participates(s Series) bool {
	if !s.Properties().Has(Bar) {
		return false
	}
	if cp, ok := s.(ColumnPositioner); ok && cp.ColumnPositionIgnored() {
		return false
	}
	return true
}

// ColumnPosition returns the zero-based position of s among its siblings.
// Series that do not participate get 0.
func (sc *SeriesContext) ColumnPosition(s Series) int {
	return sc.positions[s]
}

// ColumnCount returns how many bar series share s's category axis.
// Series that do not participate get 1.
func (sc *SeriesContext) ColumnCount(s Series) int {
	if _, ok := sc.positions[s]; !ok {
		return 1
	}
	return sc.counts[s.ScalesXAt()]
}
