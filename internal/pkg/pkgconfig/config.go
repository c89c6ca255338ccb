package pkgconfig

// Config reads typed configuration values by dotted key.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	Close() error
}
