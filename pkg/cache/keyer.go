package cache

import "time"

// LayoutKeyOpts are the options that change a measured layout.
type LayoutKeyOpts struct {
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	At     time.Duration `json:"at"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string        `json:"format"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	At     time.Duration `json:"at"`
	Locale string        `json:"locale,omitempty"`
	Scale  float64       `json:"scale,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey keys the measured layout of a definition.
	LayoutKey(defHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys one rendered output of a definition.
	ArtifactKey(defHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces keys of the form kind:hash.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(defHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", defHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(defHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", defHash, opts)
}
