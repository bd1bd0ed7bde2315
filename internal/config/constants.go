package config

const (
	DefaultHost = "localhost"
	DefaultPort = 9000

	// DefaultSQLiteDSN names a shared in-memory database; nothing is written to disk.
	DefaultSQLiteDSN = "file:bookshelf?mode=memory&cache=shared"
)
