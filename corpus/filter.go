package corpus

// FilterByYear drops comments written before minYear. Records that
// predate the annotation collection window cannot carry positive
// labels, so they only add near-constant noise to the negative class.
func FilterByYear(comments []Comment, minYear int) []Comment {
	kept := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if c.Year >= minYear {
			kept = append(kept, c)
		}
	}
	return kept
}
