package planner

// Plan computes the ordered batch sizes for fileCount files under spec.
//
// Repeating mode applies the single size until the files run out. With
// noExtra set, only complete batches are emitted and the remainder is left
// uncovered; otherwise a final short batch covers the leftover files.
//
// Explicit mode applies the listed sizes in order, each clamped to the files
// still available. When more files exist than the list covers and noExtra is
// off, extra batches sized to the list's average (integer division) are
// appended until every file is covered, the last one sized to the exact
// leftover.
//
// Every returned entry is positive and the entries sum to the number of
// files the plan covers, never more than fileCount.
func Plan(fileCount int, spec BatchSpec, noExtra bool) []int {
	if fileCount <= 0 || len(spec.Sizes) == 0 {
		return nil
	}

	if spec.Repeating {
		return planRepeating(fileCount, spec.Sizes[0], noExtra)
	}
	return planExplicit(fileCount, spec.Sizes, noExtra)
}

func planRepeating(fileCount, size int, noExtra bool) []int {
	full := fileCount / size
	rem := fileCount % size

	var batches []int
	for i := 0; i < full; i++ {
		batches = append(batches, size)
	}
	if rem > 0 && !noExtra {
		batches = append(batches, rem)
	}
	return batches
}

func planExplicit(fileCount int, sizes []int, noExtra bool) []int {
	total := 0
	for _, n := range sizes {
		total += n
	}

	// Fewer files than specified: consume sizes in order, clamping the last
	// applied size to what is left.
	if fileCount <= total {
		var batches []int
		remaining := fileCount
		for _, size := range sizes {
			if remaining <= 0 {
				break
			}
			if size > remaining {
				size = remaining
			}
			batches = append(batches, size)
			remaining -= size
		}
		return batches
	}

	batches := make([]int, len(sizes))
	copy(batches, sizes)

	if noExtra {
		return batches
	}

	// More files than specified: keep appending average-sized batches until
	// everything is covered. The average is at least 1 since all sizes are
	// positive.
	avg := total / len(sizes)
	remaining := fileCount - total
	for remaining > 0 {
		size := avg
		if size > remaining {
			size = remaining
		}
		batches = append(batches, size)
		remaining -= size
	}
	return batches
}
