package opener

// NewWithLauncher creates an Opener that hands paths to launch.
func NewWithLauncher(launch func(path string) error) *Opener {
	return &Opener{launch: launch}
}
