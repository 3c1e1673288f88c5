package corpus

// Comment is a single talk page revision from the annotated comments
// file. Attack is not populated by the loader; it is attached later by
// joining against the aggregated annotations.
type Comment struct {
	RevID    int64
	Text     string
	Year     int
	LoggedIn bool
	NS       string
	Sample   string
	Split    string
	Attack   bool
}

// Annotation is one worker's attack judgment for a single revision.
// Judgments are 0/1 for most workers but may be fractional in [0,1].
type Annotation struct {
	RevID  int64
	Attack float64
}
