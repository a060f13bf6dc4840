package domain

import (
	"fmt"
	"maps"
	"slices"
)

type Scenario string

const (
	ScenarioVanilla Scenario = "vanilla"
	ScenarioFabric  Scenario = "fabric"
)

func ParseScenario(raw string) (Scenario, error) {
	switch scenario := Scenario(raw); scenario {
	case ScenarioVanilla, ScenarioFabric:
		return scenario, nil
	default:
		return "", fmt.Errorf("%q: %w", raw, ErrScenarioUnknown)
	}
}

// Well-known component keys.
const (
	ComponentJava      = "java"
	ComponentMinecraft = "net.minecraft"
	ComponentFabric    = "net.fabricmc"
)

const DefaultJavaPath = "java"

// Component is a typed fragment of instance state: *GameComponent or
// *JavaComponent.
type Component interface {
	isComponent()
}

type GameComponent struct {
	Version    string
	AssetIndex string
}

type JavaComponent struct {
	Path      string
	Arguments string
}

func (*GameComponent) isComponent() {}
func (*JavaComponent) isComponent() {}

// InstanceState is the persisted descriptor of an acquired instance.
type InstanceState struct {
	Scenario   Scenario
	Components map[string]Component
	Wrapper    string
	PreLaunch  []string
}

func NewInstanceState(scenario Scenario) InstanceState {
	return InstanceState{
		Scenario:   scenario,
		Components: map[string]Component{},
	}
}

// Clone deep copies the state so overlays can extend it without touching
// the base's copy.
func (s InstanceState) Clone() InstanceState {
	clone := InstanceState{
		Scenario:   s.Scenario,
		Components: make(map[string]Component, len(s.Components)),
		Wrapper:    s.Wrapper,
		PreLaunch:  slices.Clone(s.PreLaunch),
	}
	for key, component := range s.Components {
		switch c := component.(type) {
		case *GameComponent:
			copied := *c
			clone.Components[key] = &copied
		case *JavaComponent:
			copied := *c
			clone.Components[key] = &copied
		}
	}
	return clone
}

func (s InstanceState) Component(key string) (Component, error) {
	component, ok := s.Components[key]
	if !ok || component == nil {
		return nil, fmt.Errorf("%q: %w", key, ErrComponentNotFound)
	}
	return component, nil
}

func (s InstanceState) Game(key string) (*GameComponent, error) {
	component, err := s.Component(key)
	if err != nil {
		return nil, err
	}
	game, ok := component.(*GameComponent)
	if !ok {
		return nil, fmt.Errorf("%q is not a game component: %w", key, ErrComponentNotFound)
	}
	return game, nil
}

func (s InstanceState) Java() (*JavaComponent, error) {
	component, err := s.Component(ComponentJava)
	if err != nil {
		return nil, err
	}
	java, ok := component.(*JavaComponent)
	if !ok {
		return nil, fmt.Errorf("%q is not a java component: %w", ComponentJava, ErrComponentNotFound)
	}
	return java, nil
}

func (s InstanceState) ComponentKeys() []string {
	return slices.Sorted(maps.Keys(s.Components))
}

// RequireAssetIndex returns the asset set id needed at launch time.
func (g *GameComponent) RequireAssetIndex() (string, error) {
	if g.AssetIndex == "" {
		return "", fmt.Errorf("asset_index of %s: %w", g.Version, ErrFieldNotFound)
	}
	return g.AssetIndex, nil
}
