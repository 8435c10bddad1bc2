package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	SubsLanguage   string
	TargetLanguage string
	Output         string
	InputExtension string
	MinWordSize    int
	MinAppearance  int
	Encoding       string

	// Translation flags
	Engine string
	Jobs   int

	// Output and discovery flags
	JSONOutput  bool
	ListEngines bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		SubsLanguage:   "auto",
		TargetLanguage: "en",
		Output:         "output.txt",
		InputExtension: "txt",
		MinWordSize:    1,
		MinAppearance:  4,
		Encoding:       "utf-8",
		Engine:         "google",
		Jobs:           1,
	}
}
