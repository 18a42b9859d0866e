package preset

// VelocityRange is one contiguous band of the 1-127 velocity scale.
type VelocityRange struct {
	Start int
	End   int
}

// VelocityRanges partitions 1..127 into n contiguous bands. Band k
// spans floor(k*127/n)+1 .. floor((k+1)*127/n); the last band always
// ends at 127 and every start is forced to one past the previous end,
// so the bands tile the full range with no gap or overlap.
func VelocityRanges(n int) []VelocityRange {
	if n <= 0 {
		return nil
	}

	ranges := make([]VelocityRange, n)
	for i := 0; i < n; i++ {
		start := i*127/n + 1
		end := (i + 1) * 127 / n
		if i == n-1 {
			end = 127
		}
		ranges[i] = VelocityRange{Start: start, End: end}
	}

	for i := 1; i < n; i++ {
		if ranges[i].Start != ranges[i-1].End+1 {
			ranges[i].Start = ranges[i-1].End + 1
		}
	}

	return ranges
}
