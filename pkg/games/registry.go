package games

import (
	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/registry"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// Options carries the caller-supplied pieces a descriptor factory needs.
// InstallDir is mandatory: install locations are machine-specific and come
// from the launch profile or environment, not from this package.
type Options struct {
	// InstallDir is the release installation directory of the title
	InstallDir string

	// FS overrides the filesystem implementation, for testing
	FS types.FS
}

// Factory builds a fresh, immutable descriptor for one title
type Factory func(opts Options) (types.GameDescriptor, error)

// factories holds one factory per title identifier. Descriptors themselves
// are never cached: every Get returns a freshly constructed value.
var factories = registry.New[Factory]()

// Register adds a descriptor factory under the given title identifier
func Register(name string, factory Factory) error {
	return factories.Register(name, factory)
}

// Get constructs a fresh descriptor for the named title
func Get(name string, opts Options) (types.GameDescriptor, error) {
	factory, err := factories.Get(name)
	if err != nil {
		return nil, liberrors.Wrapf(err, liberrors.ErrGameNotFound, "unknown game %q", name)
	}
	return factory(opts)
}

// List returns the registered title identifiers in sorted order
func List() []string {
	return factories.List()
}
