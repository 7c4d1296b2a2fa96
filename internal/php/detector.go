package php

// A Probe answers questions about the files in the current directory.
// Implementations must not look into subdirectories.
type Probe interface {
	HasFile(name string) bool
	HasExtension(ext string) bool
}

// IsProject reports whether the directory behind probe looks like a PHP
// project: it holds a composer.json file or any *.php file.
func IsProject(probe Probe) bool {
	return probe.HasFile("composer.json") || probe.HasExtension("php")
}
