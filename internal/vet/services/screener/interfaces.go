package screener

import "github.com/quietmint/handlevet/internal/vet/domain"

// VerdictCache caches screening verdicts by normalized handle with basic
// metrics. Implementations must be safe for repeated Get/Put of the same
// key.
type VerdictCache interface {
	Get(handle string) (domain.Verdict, bool)
	Put(handle string, v domain.Verdict)
	Len() int
	Purge()
	Stats() (hits, misses, evictions uint64)
}
