package flex

// Measure classifies every child, computes the container's resolved
// size for the given proposal, and rebuilds the cache with the
// per-item lengths and distribution coefficients.
//
// An Unspecified (or Infinite) main-axis proposal resolves to the
// natural content size: the sum of the children's natural lengths plus
// spacing. When the proposal cannot fit the relative and fixed content,
// the resolved size grows past it to the minimum feasible size and no
// discretionary space is distributed.
func (s *Stack) Measure(children []Child, p Proposal, c *Cache) Size {
	n := len(children)
	var totalSpacing float64
	if n > 1 {
		totalSpacing = s.Spacing * float64(n-1)
	}

	proposedMain := p.Main(s.Axis)
	proposedCross := p.Cross(s.Axis)

	// Query each item once for its natural dimensions under the
	// proposed cross length, and once under an infinite main proposal
	// for its unconstrained maximum.
	naturals := make([]Dimensions, n)
	maxima := make([]float64, n)
	for i, ch := range children {
		naturals[i] = ch.item.Measure(MakeProposal(s.Axis, Unspecified, proposedCross))
		m := ch.item.Measure(MakeProposal(s.Axis, Infinite, proposedCross))
		maxima[i] = s.Axis.MainOf(m.Size)
	}

	// Natural-size fallback for unconstrained measurements. Spacers
	// contribute zero by construction.
	if !Specified(proposedMain) {
		proposedMain = totalSpacing
		for i := range naturals {
			proposedMain += s.Axis.MainOf(naturals[i].Size)
		}
	}

	c.reset()

	var (
		totalFraction float64
		totalRegular  float64
		regularCount  int
		spacerCount   int
		resolvedCross float64
	)
	for i, ch := range children {
		natMain := s.Axis.MainOf(naturals[i].Size)

		crossLen := s.Axis.CrossOf(naturals[i].Size)
		if Specified(proposedCross) && crossLen > proposedCross {
			crossLen = proposedCross
		}
		if crossLen > resolvedCross {
			resolvedCross = crossLen
		}

		info := ItemInfo{
			MaxLength:       maxima[i],
			AlignmentOffset: s.guideOffset(naturals[i]),
		}
		if info.AlignmentOffset > c.maxAlignmentOffset {
			c.maxAlignmentOffset = info.AlignmentOffset
		}

		switch {
		case ch.relative:
			frac := ch.fraction
			if frac > 1 {
				frac = 1
			}
			if frac < 0 {
				frac = 0
			}
			info.Class = ClassRelative
			info.Fraction = frac
			info.Length = proposedMain * frac
			totalFraction += frac
		case natMain == 0 && maxima[i] == 0:
			// Spacer heuristic: no intrinsic size under any proposal.
			// An empty non-filler item is indistinguishable from a
			// spacer by this test; that is an accepted approximation.
			info.Class = ClassSpacer
			spacerCount++
		default:
			info.Class = ClassRegular
			info.CanGrow = true
			info.Length = natMain
			totalRegular += natMain
			regularCount++
		}
		c.items = append(c.items, info)
	}

	multiplied := totalFraction * proposedMain
	remaining := proposedMain - totalSpacing - multiplied

	// With no discretionary space the proposal cannot be honored
	// without clipping: report the minimum feasible size instead and
	// distribute nothing. The host may re-measure with a larger
	// proposal if it can offer one.
	degenerate := remaining <= 0

	if !degenerate {
		switch {
		case spacerCount > 0:
			// Spacers split the leftover equally; regular items keep
			// their natural length.
			fill := (remaining - totalRegular) / float64(spacerCount)
			if fill < 0 {
				fill = 0
			}
			c.spacerFill = fill
		case regularCount > 0:
			// Regular items absorb the slack. An item whose natural
			// length equals its unconstrained maximum cannot grow and
			// is downgraded to fixed.
			var fixed float64
			for i := range c.items {
				info := &c.items[i]
				if info.Class != ClassRegular {
					continue
				}
				if info.Length == info.MaxLength {
					info.CanGrow = false
					fixed += info.Length
				}
			}
			growable := totalRegular - fixed
			if growable > 0 {
				m := (proposedMain - totalSpacing - fixed - multiplied) / growable
				if m < 0 {
					m = 0
				}
				c.growthMultiplier = m
			} else {
				// No growable item exists to absorb the slack.
				degenerate = true
			}
		default:
			degenerate = true
		}
	}

	resolvedMain := proposedMain
	if degenerate {
		resolvedMain = multiplied + totalRegular + totalSpacing
		c.spacerFill = 0
		c.growthMultiplier = 1
	}

	c.resolvedMainLength = resolvedMain
	return s.Axis.Pack(resolvedMain, resolvedCross)
}
