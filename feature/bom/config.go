package bom

// Config holds configuration for BOM report output.
type Config struct {
	// OutDir is the directory the report files are written to.
	OutDir string `mapstructure:"out_dir" default:"bom-out"`
	// Consumables toggles the off-model hardware quantities.
	Consumables bool `mapstructure:"consumables" default:"true"`
	// UploadPrefix is the object prefix for published reports.
	UploadPrefix string `mapstructure:"upload_prefix" default:"bom/"`
}
