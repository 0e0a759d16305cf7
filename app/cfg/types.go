package cfg

type Cfg struct {
	// Local list files
	FeedsFile  string
	BadFile    string
	ManualFile string

	// Discovery configuration
	SourcesFile string
	Timeout     int
	Check       bool

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
