package ports

// FileStore persists uploaded files and returns the public URL path they
// will be served under.
type FileStore interface {
	Save(filename string, data []byte) (string, error)
}
