package shine

// Version is the mod version string.
// Override at build time with: go build -ldflags "-X github.com/jedahan/Shine/pkg/shine.Version=0.2.0"
var Version = "0.1.0"

// VersionString returns the full version display string.
func VersionString() string {
	return "Shine " + Version
}
