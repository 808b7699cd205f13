package adapter

// ReceiptStore persists uploaded receipt images and returns the stored path.
type ReceiptStore interface {
	// Save writes the byte content under a generated collision-free name,
	// keeping the original file extension, and returns the stored path.
	// Existing files are never overwritten.
	Save(data []byte, filename string) (string, error)
}
