package types

// Store key layout. A single namespace byte keeps oracle keys apart from
// other modules sharing a multistore in tests.
var (
	keyNamespace = []byte{0x06}

	// ParamsKey stores the oracle runtime parameters
	ParamsKey = append(keyNamespace, 0x01)

	// SourceKeyPrefix indexes registered oracle sources by address
	SourceKeyPrefix = append(keyNamespace, 0x02)

	// ReputationKeyPrefix indexes per-source reputation records by address
	ReputationKeyPrefix = append(keyNamespace, 0x03)

	// SourceCountKey stores the registered source count
	SourceCountKey = append(keyNamespace, 0x04)

	// PausedKey stores the emergency pause flag
	PausedKey = append(keyNamespace, 0x05)
)

// GetSourceKey returns the store key for a registered source
func GetSourceKey(addr string) []byte {
	return append(SourceKeyPrefix, []byte(addr)...)
}

// GetReputationKey returns the store key for a source's reputation record
func GetReputationKey(addr string) []byte {
	return append(ReputationKeyPrefix, []byte(addr)...)
}
