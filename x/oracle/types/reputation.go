package types

// Reputation bootstrap values for a freshly registered source. New sources
// start at a neutral midpoint score with unit weight so they neither dominate
// nor are ignored by aggregation.
const (
	InitialReputationScore = uint32(50)
	InitialWeight          = uint32(1)
)

// SourceReputation tracks submission quality for one oracle source. The
// record is created when governance registers the source and updated by the
// submission path.
type SourceReputation struct {
	// TotalSubmissions counts all price submissions by the source
	TotalSubmissions uint64 `json:"total_submissions"`
	// AccurateSubmissions counts submissions within the deviation bound
	AccurateSubmissions uint64 `json:"accurate_submissions"`
	// AvgDeviationBps is the running average deviation from the aggregate
	AvgDeviationBps int64 `json:"avg_deviation_bps"`
	// Score is the reputation score in [0, 100]
	Score uint32 `json:"score"`
	// Weight is the source's aggregation weight
	Weight uint32 `json:"weight"`
	// LastSlash is the unix time of the last slashing event (zero if never)
	LastSlash uint64 `json:"last_slash"`
}

// NewSourceReputation returns the bootstrap reputation record for a newly
// registered source.
func NewSourceReputation() SourceReputation {
	return SourceReputation{
		Score:  InitialReputationScore,
		Weight: InitialWeight,
	}
}

// StalenessLevel classifies how old a price is relative to its update cadence.
type StalenessLevel uint8

const (
	StalenessFresh    StalenessLevel = iota // under 2 minutes
	StalenessAging                          // 2 to 5 minutes
	StalenessStale                          // 5 to 15 minutes
	StalenessCritical                       // over 15 minutes
)

// String implements the Stringer interface
func (s StalenessLevel) String() string {
	switch s {
	case StalenessFresh:
		return "fresh"
	case StalenessAging:
		return "aging"
	case StalenessStale:
		return "stale"
	case StalenessCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// StalenessFor classifies a price age in seconds.
func StalenessFor(ageSeconds uint64) StalenessLevel {
	switch {
	case ageSeconds < 2*60:
		return StalenessFresh
	case ageSeconds < 5*60:
		return StalenessAging
	case ageSeconds < 15*60:
		return StalenessStale
	default:
		return StalenessCritical
	}
}
