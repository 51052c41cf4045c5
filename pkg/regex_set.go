package pkg

import "regexp"

// regexSet is a synthesized multi-pattern matcher: Go has no batched
// regex-set primitive, so the set compiles every participant pattern
// individually and reports ascending hit indices in a single call.
//
// The pattern order is fixed at construction as the concatenation of
// pre-middleware regexes, route regexes, post-middleware regexes and
// scoped-data-map regexes; dispatch depends on the contiguous index
// ranges this ordering produces.
type regexSet struct {
	regexes []*regexp.Regexp

	// Exclusive upper bounds of the four contiguous index ranges.
	preEnd   int
	routeEnd int
	postEnd  int
	dataEnd  int
}

// matchedIndexes carries a request's RegexSet hits partitioned back into
// the four participant classes, each list in ascending registration order.
type matchedIndexes struct {
	pre    []int
	routes []int
	post   []int
	data   []int
}

// newRegexSet compiles the combined pattern list. The counts describe how
// many patterns belong to each participant class, in order.
func newRegexSet(patterns []string, preCount, routeCount, postCount, dataCount int) (*regexSet, error) {
	regexes := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, NewBadRoutePatternError(pattern, err)
		}
		regexes = append(regexes, re)
	}

	return &regexSet{
		regexes:  regexes,
		preEnd:   preCount,
		routeEnd: preCount + routeCount,
		postEnd:  preCount + routeCount + postCount,
		dataEnd:  preCount + routeCount + postCount + dataCount,
	}, nil
}

// matches runs every pattern against the target path and partitions the
// hits into the four participant classes. Each list preserves ascending
// set order, which is the registration order.
func (s *regexSet) matches(targetPath string) matchedIndexes {
	var m matchedIndexes

	for i, re := range s.regexes {
		if !re.MatchString(targetPath) {
			continue
		}

		switch {
		case i < s.preEnd:
			m.pre = append(m.pre, i)
		case i < s.routeEnd:
			m.routes = append(m.routes, i-s.preEnd)
		case i < s.postEnd:
			m.post = append(m.post, i-s.routeEnd)
		default:
			m.data = append(m.data, i-s.postEnd)
		}
	}

	return m
}

// size returns the number of patterns in the set.
func (s *regexSet) size() int {
	return len(s.regexes)
}
