/*
Package alias defines the core domain entity for a virtualias alias.
*/
package alias

/*
Alias is a named shell function that changes into the directory an
environment was created from and activates that environment. The registry
file only holds the rendered function; records are rebuilt by scanning it.
*/
type Alias struct {
	Name             string `yaml:"alias"`
	WorkingDirectory string `yaml:"working_directory,omitempty"`
	EnvSubdirectory  string `yaml:"env,omitempty"`
}
