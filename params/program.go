package params

// These are program parameters that need to be constant between
// clients; callers re-derive record addresses against them.

const (
	// DefaultProgramID is the identity of the deployed voting program. All
	// record addresses are derived against it and all records are owned by it.
	DefaultProgramID = "0x9d3c44a5b2f06e71c8aa0de57c1f5a64b1a90287e440c50b65fffa2e3675acb4"

	// DefaultRecordCacheSize bounds the record store read cache.
	DefaultRecordCacheSize = 2048

	// DefaultMetricsPort is the port the prometheus endpoint listens on.
	DefaultMetricsPort = 9090
)
