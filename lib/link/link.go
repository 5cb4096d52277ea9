package link

// Linker is the engine driven by the front-end. SetOutput must be called
// after Configure and before any input is added; Link is called once.
type Linker interface {
	Configure(cfg *Config) error
	SetOutput(path string) error
	AddObject(path string) error
	AddNameSpec(spec string) error
	Link() error
}

// Config is the linker configuration assembled from the command line.
type Config struct {
	Triple  string
	SOName  string
	SysRoot string
	// Dyld is the program interpreter written to PT_INTERP.
	Dyld   string
	Shared bool

	// WrapSymbols keeps --wrap order, duplicates included.
	WrapSymbols []string
	SearchDirs  []string

	// LD is the external linker program.
	LD string
}

func NewConfig(triple string) *Config {
	return &Config{Triple: triple}
}

func (c *Config) AddWrap(sym string) {
	c.WrapSymbols = append(c.WrapSymbols, sym)
}

func (c *Config) AddSearchDir(dir string) {
	c.SearchDirs = append(c.SearchDirs, dir)
}
