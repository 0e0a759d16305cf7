package sources

// Format identifies the payload layout of a feed directory endpoint.
type Format string

const (
	FormatJSON Format = "json"
	FormatOPML Format = "opml"
)

// Source describes one remote feed directory to sync against.
type Source struct {
	Format Format `yaml:"format"`
	URL    string `yaml:"url"`
}
