package exitcode

// The CLI contract is binary: a completed pass exits 0 even when individual
// types failed, and every fatal path (missing token, unreachable service,
// interrupt, internal error) exits 1.
const (
	Success = 0
	Fatal   = 1
)
