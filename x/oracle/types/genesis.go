package types

import "fmt"

// GenesisState defines the oracle module's genesis state.
type GenesisState struct {
	// Params are the oracle runtime parameters
	Params Params `json:"params"`
	// Sources are the registered oracle source addresses
	Sources []string `json:"sources"`
	// Paused is the emergency pause flag
	Paused bool `json:"paused"`
}

// DefaultGenesis returns the default genesis state for the oracle module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:  DefaultParams(),
		Sources: []string{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[string]bool, len(gs.Sources))
	for _, addr := range gs.Sources {
		if addr == "" {
			return fmt.Errorf("source address cannot be empty")
		}
		if seen[addr] {
			return fmt.Errorf("duplicate source %s", addr)
		}
		seen[addr] = true
	}

	return nil
}
