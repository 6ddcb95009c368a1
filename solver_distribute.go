package layout

// distributeAxis is the pre-order DFS that assigns each element's children a
// concrete size along one geometric axis (§4.4 steps 3 and 6). A is the
// content remainder after padding and inter-child gaps on that axis. Along
// the container's main axis (Direction aligned with axis), Grow children
// share the leftover space R after Fixed/Percent/Fit children are assigned.
// Along the perpendicular axis, each Grow child independently receives
// min(A, its max) since there is no shared remainder to divide.
func (s *solver) distributeAxis(idx int, axis axisKind) {
	el := s.a.get(idx)
	kids := s.a.childrenOf(idx)
	if len(kids) == 0 {
		return
	}

	contentSize := dimOf(el.Dimensions, axis) - paddingOf(el.Layout.Padding, axis)
	if len(kids) > 1 {
		contentSize -= float64(len(kids)-1) * el.Layout.ChildGap
	}

	main := isMainAxis(el.Layout.Direction, axis)
	var growKids []int
	assigned := 0.0

	for _, k := range kids {
		c := s.a.get(k)
		cfg := axisOf(c.Layout, axis)
		switch cfg.Kind {
		case SizingFixed:
			setDim(c, axis, cfg.Fixed)
			assigned += cfg.Fixed
		case SizingPercent:
			v := cfg.clamp(contentSize * cfg.Percent)
			setDim(c, axis, v)
			assigned += v
		case SizingFit:
			v := dimOf(c.MinDimensions, axis)
			setDim(c, axis, v)
			assigned += v
		case SizingGrow:
			if main {
				growKids = append(growKids, k)
			} else {
				setDim(c, axis, cfg.clamp(contentSize))
			}
		}
	}

	if main && len(growKids) > 0 {
		distributeGrow(s.a, growKids, axis, contentSize-assigned)
	}

	for _, k := range kids {
		s.distributeAxis(k, axis)
	}
}

// distributeGrow splits remainder equally among Grow siblings, handing the
// float-precision remainder of an inexact split to the earliest sibling in
// input order, per the tie-break rule: determinism over which sibling gets
// the odd sub-point, not which gets more space overall.
func distributeGrow(a *arena, growKids []int, axis axisKind, remainder float64) {
	n := len(growKids)
	share := remainder / float64(n)
	sum := 0.0
	shares := make([]float64, n)
	for i := range shares {
		shares[i] = share
		sum += share
	}
	shares[0] += remainder - sum

	for i, k := range growKids {
		c := a.get(k)
		cfg := axisOf(c.Layout, axis)
		setDim(c, axis, cfg.clamp(shares[i]))
	}
}
