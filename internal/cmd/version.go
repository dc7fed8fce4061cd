package cmd

import "fmt"

// versionString is set by main from build info
var versionString = "cereja dev"

// SetVersion stores the formatted version string printed by the version
// command
func SetVersion(v string) {
	versionString = v
}

// VersionCmd prints version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(cli *CLI) error {
	fmt.Println(versionString)
	return nil
}
