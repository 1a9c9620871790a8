package cli

// Flag constants for oraclegov CLI commands
const (
	// Proposal creation flags
	FlagDescription = "description"
	FlagOracle      = "oracle"
	FlagParamKey    = "param-key"
	FlagParamValue  = "param-value"
)
