// Package trash moves files to the system trash and undoes those moves
package trash

// Trasher is the system trash-move primitive
type Trasher interface {
	// Trash moves the file at path into the trash
	Trash(path string) error

	// Dir returns the directory that receives path when it is trashed.
	// The trash may rename the file inside it.
	Dir(path string) string
}

// Releaser is implemented by trashers that keep metadata alongside trashed
// files and need to drop it once a file has been restored
type Releaser interface {
	Release(trashedPath string) error
}
