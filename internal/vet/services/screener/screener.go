package screener

import (
	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/domain"
)

// Screener evaluates handles against a fixed rule list, consulting a
// verdict cache before re-evaluating. The rule list is read-only for the
// lifetime of the Screener.
type Screener struct {
	rules  []domain.Rule
	cache  VerdictCache
	logger log.Logger
}

// Options configures a Screener.
type Options struct {
	Rules  []domain.Rule
	Cache  VerdictCache
	Logger log.Logger
}

// New constructs a Screener. A nil Cache disables caching and a nil
// Logger discards logs.
func New(opts Options) *Screener {
	if opts.Cache == nil {
		opts.Cache = nopCache{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Screener{
		rules:  opts.Rules,
		cache:  opts.Cache,
		logger: opts.Logger,
	}
}

// Screen evaluates one handle, returning the cached verdict when present.
func (s *Screener) Screen(handle string) domain.Verdict {
	h := domain.NormalizeHandle(handle)
	if v, ok := s.cache.Get(h); ok {
		return v
	}
	v := Evaluate(h, s.rules)
	s.cache.Put(h, v)
	s.logger.Debug(map[string]any{"handle": h, "status": v.Status()}, "screened")
	return v
}

// Stats returns cumulative verdict cache counters.
func (s *Screener) Stats() (hits, misses, evictions uint64) {
	return s.cache.Stats()
}

// nopCache is the cache used when none is supplied: always a miss.
type nopCache struct{}

func (nopCache) Get(string) (domain.Verdict, bool) { return domain.Verdict{}, false }
func (nopCache) Put(string, domain.Verdict)        {}
func (nopCache) Len() int                          { return 0 }
func (nopCache) Purge()                            {}
func (nopCache) Stats() (uint64, uint64, uint64)   { return 0, 0, 0 }

var _ VerdictCache = nopCache{}
