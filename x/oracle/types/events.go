package types

// Event types for the oracle module
const (
	EventTypeSourceAdded   = "oracle_source_added"
	EventTypeSourceRemoved = "oracle_source_removed"
	EventTypeParamsUpdated = "oracle_params_updated"
	EventTypePaused        = "oracle_paused"
	EventTypeResumed       = "oracle_resumed"
)

// Event attribute keys for the oracle module
const (
	AttributeKeySource      = "source"
	AttributeKeySourceCount = "source_count"
	AttributeKeyParam       = "param"
	AttributeKeyValue       = "value"
)
