package domain

// ProcessSpec describes a game process to spawn.
type ProcessSpec struct {
	Path       string
	Args       []string
	Dir        string
	PreLaunch  []string
	ShowOutput bool
}
