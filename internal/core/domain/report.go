package domain

// Report summarizes one completed generation run for user-facing output.
type Report struct {
	Environment string
	Output      string
	Packages    int
	Roots       int
	CacheHit    bool
}
