package ports

// Opener hands a produced artifact to the platform's default viewer.
//
//go:generate mockgen -source=opener.go -destination=mocks/mock_opener.go -package=mocks
type Opener interface {
	// Open shows the file at path. It does not wait for the viewer to exit.
	Open(path string) error
}
