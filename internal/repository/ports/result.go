package ports

// WriteResult reports the outcome of a single write against the store.
type WriteResult struct {
	Acknowledged bool
	MatchedCount int64
	DeletedCount int64
}
