package domain

// Quote is one entry of the global read-only inspirational quote pool.
type Quote struct {
	ID     int64
	Text   string
	Author *string
}
