package cache

// Keyer derives cache keys for each pipeline stage.
type Keyer interface {
	// HTTPKey identifies a fetched remote input.
	HTTPKey(namespace, key string) string
	// GridKey identifies a grid laid out from input with the given hash.
	GridKey(inputHash string, opts GridKeyOpts) string
	// ArtifactKey identifies a rendered artifact of the grid with the given hash.
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string
}

// GridKeyOpts holds everything besides the input bytes that changes a grid.
type GridKeyOpts struct {
	Format  string   `json:"format"`
	Palette []string `json:"palette,omitempty"`
}

// ArtifactKeyOpts holds everything besides the grid that changes an artifact.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	VizType   string `json:"viz_type"`
	Title     string `json:"title,omitempty"`
	Weekends  bool   `json:"weekends,omitempty"`
	PNGEngine string `json:"png_engine,omitempty"`
	Detailed  bool   `json:"detailed,omitempty"`
}

// DefaultKeyer is the unscoped [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HTTPKey returns "http:<namespace>:<key>".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// GridKey hashes the input hash together with opts.
func (DefaultKeyer) GridKey(inputHash string, opts GridKeyOpts) string {
	return hashKey("grid", inputHash, opts)
}

// ArtifactKey hashes the grid hash together with opts.
func (DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", gridHash, opts)
}
