package namematch

// Link pairs a name from one list with a name from the other.
type Link struct {
	Left        string
	Right       string
	Correlation float64
}

// CreateLinks pairs every name of the shorter list with at most one name
// of the longer list. identical names (after Normalize) are paired first,
// the rest are paired greedily with their most similar unpaired name.
// pairs scoring below threshold are left out.
func CreateLinks(leftList, rightList []string, threshold float64) []Link {
	swapped := false
	if len(rightList) < len(leftList) {
		leftList, rightList = rightList, leftList
		swapped = true
	}

	orient := func(link Link) Link {
		if swapped {
			link.Left, link.Right = link.Right, link.Left
		}
		return link
	}

	var result []Link
	matchedLeft := make(map[string]struct{})
	matchedRight := make(map[string]struct{})

	for _, left := range leftList {
		for _, right := range rightList {
			if _, ok := matchedRight[right]; ok {
				continue
			}
			if Normalize(left) == Normalize(right) {
				result = append(result, orient(Link{Left: left, Right: right, Correlation: 1}))
				matchedLeft[left] = struct{}{}
				matchedRight[right] = struct{}{}
				break
			}
		}
	}

	for _, left := range leftList {
		if _, ok := matchedLeft[left]; ok {
			continue
		}

		var mostSimilarity float64
		var mostSimilarRight string
		for _, right := range rightList {
			if _, ok := matchedRight[right]; ok {
				continue
			}
			similarity := Similarity(left, right)
			if similarity > mostSimilarity {
				mostSimilarity = similarity
				mostSimilarRight = right
			}
		}

		if mostSimilarity > 0 && mostSimilarity >= threshold {
			result = append(result, orient(Link{
				Left:        left,
				Right:       mostSimilarRight,
				Correlation: mostSimilarity,
			}))
			matchedLeft[left] = struct{}{}
			matchedRight[mostSimilarRight] = struct{}{}
		}
	}

	return result
}
