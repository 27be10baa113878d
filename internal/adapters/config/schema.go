package config

// Projectfile is the on-disk shape of texwatch.yaml.
type Projectfile struct {
	Engine    string `yaml:"engine"`
	Documents string `yaml:"documents,omitempty"`
	Output    string `yaml:"output,omitempty"`
	Open      string `yaml:"open,omitempty"`
}
