//go:build !darwin

package trash

const permissionHint = "Permission denied restoring from Trash. " +
	"Check that you can write to both the trash directory and the original location, or restore manually from Trash."
