package domain

// LoaderVersion is one mod-loader release listed by a loader's meta service.
type LoaderVersion struct {
	Version   string `json:"version"`
	Stable    bool   `json:"stable"`
	Separator string `json:"separator,omitempty"`
	Build     int    `json:"build,omitempty"`
}
