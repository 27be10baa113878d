package ports

// Scaffolder creates new projects.
//
//go:generate mockgen -source=scaffolder.go -destination=mocks/mock_scaffolder.go -package=mocks
type Scaffolder interface {
	// Create writes a new project named name below parent using template.
	// It returns the path of the created project.
	Create(parent, name, template string) (string, error)

	// Templates lists the available template names.
	Templates() []string
}
