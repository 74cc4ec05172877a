package catalog

// Config holds configuration for the part catalog source.
type Config struct {
	// Source selects where the parts export is read from (file, storage).
	Source string `mapstructure:"source" default:"file"`
	// PartsExport is the local path of the parts export (file source).
	PartsExport string `mapstructure:"parts_export" default:"bom-parts.json"`
	// Object is the object name of the parts export (storage source).
	Object string `mapstructure:"object" default:"exports/bom-parts.json"`
	// UseCache enables the persisted part cache.
	UseCache bool `mapstructure:"use_cache" default:"false"`
}

const (
	SourceFile    = "file"
	SourceStorage = "storage"
)
