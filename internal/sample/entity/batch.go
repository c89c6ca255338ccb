package entity

// Batch is one issued collection of sample identifiers.
type Batch struct {
	ID        string // UUID assigned by the identifier provider
	Seq       int64  // numeric sequence number, for humans scanning logs
	Label     string
	Status    BatchStatus
	Err       string
	Requested int
	IDs       []string
	CreatedAt int64
	EndedAt   int64
}
