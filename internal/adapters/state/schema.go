package state

import (
	"fmt"

	"github.com/bnema/mcli/internal/domain"
)

type fileSchema struct {
	Scenario   string                     `json:"scenario"`
	Components map[string]componentSchema `json:"components"`
	Wrapper    *string                    `json:"wrapper"`
	PreLaunch  []string                   `json:"prelaunch_cmds"`
}

// componentSchema is untagged: game components carry a version, java
// components a path.
type componentSchema struct {
	Version    *string `json:"version,omitempty"`
	AssetIndex *string `json:"asset_index,omitempty"`
	Path       *string `json:"path,omitempty"`
	Arguments  *string `json:"arguments,omitempty"`
}

func toSchema(state domain.InstanceState) fileSchema {
	file := fileSchema{
		Scenario:   string(state.Scenario),
		Components: make(map[string]componentSchema, len(state.Components)),
		PreLaunch:  state.PreLaunch,
	}
	if state.Wrapper != "" {
		file.Wrapper = &state.Wrapper
	}

	for key, component := range state.Components {
		switch c := component.(type) {
		case *domain.GameComponent:
			file.Components[key] = componentSchema{Version: &c.Version, AssetIndex: optional(c.AssetIndex)}
		case *domain.JavaComponent:
			file.Components[key] = componentSchema{Path: &c.Path, Arguments: optional(c.Arguments)}
		}
	}
	return file
}

func fromSchema(file fileSchema) (domain.InstanceState, error) {
	scenario, err := domain.ParseScenario(file.Scenario)
	if err != nil {
		return domain.InstanceState{}, err
	}

	state := domain.NewInstanceState(scenario)
	state.PreLaunch = file.PreLaunch
	if file.Wrapper != nil {
		state.Wrapper = *file.Wrapper
	}

	for key, entry := range file.Components {
		switch {
		case entry.Version != nil:
			state.Components[key] = &domain.GameComponent{Version: *entry.Version, AssetIndex: value(entry.AssetIndex)}
		case entry.Path != nil:
			state.Components[key] = &domain.JavaComponent{Path: *entry.Path, Arguments: value(entry.Arguments)}
		default:
			return domain.InstanceState{}, fmt.Errorf("component %q: %w", key, domain.ErrMalformedDocument)
		}
	}
	return state, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
