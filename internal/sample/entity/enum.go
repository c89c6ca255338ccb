package entity

type BatchStatus string

const (
	BatchStatusQueued     BatchStatus = "QUEUED"
	BatchStatusGenerating BatchStatus = "GENERATING"
	BatchStatusDone       BatchStatus = "DONE"
	BatchStatusFailed     BatchStatus = "FAILED"
)
