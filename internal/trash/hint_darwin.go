package trash

const permissionHint = "Permission denied restoring from Trash. macOS requires Full Disk Access for this app to restore. " +
	"Enable it in System Settings > Privacy & Security > Full Disk Access, or restore manually from Trash."
