package git

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// isMemoryFilesystem reports whether fs lives only in memory. The git CLI
// operates on the real filesystem and cannot read such a repository.
// Chroot wrappers, which memfs.New returns, are unwrapped first.
func isMemoryFilesystem(fs billy.Basic) bool {
	if wrapped, ok := fs.(interface{ Underlying() billy.Basic }); ok {
		return isMemoryFilesystem(wrapped.Underlying())
	}
	typeName := fmt.Sprintf("%T", fs)
	return strings.Contains(strings.ToLower(typeName), "mem")
}
