package shell

import (
	"errors"
	"fmt"
	"os"
	"strings"

	shellerrors "pake/internal/infrastructure/errors"
	"pake/internal/platform"
)

// HomeDirFunc resolves the current user's home directory
type HomeDirFunc func() (string, error)

// ResolveDataDir computes the per-user data directory for productName and
// creates it when missing. ok is false on platforms that do not hand the
// window an explicit data directory; the home directory is not consulted then.
func ResolveDataDir(adapter platform.Adapter, home HomeDirFunc, productName string) (dir string, ok bool, err error) {
	// DataDir is pure, so probing with an empty home is safe
	if _, ok := adapter.DataDir("", productName); !ok {
		return "", false, nil
	}

	if home == nil {
		home = os.UserHomeDir
	}
	h, err := home()
	if err != nil {
		return "", false, shellerrors.HandleHomeDirNotFound("resolve_data_dir", err)
	}
	if strings.TrimSpace(h) == "" {
		return "", false, shellerrors.HandleHomeDirNotFound("resolve_data_dir", errors.New("home directory is empty"))
	}

	dir, _ = adapter.DataDir(h, productName)
	if err := ensureDir(dir); err != nil {
		return "", false, shellerrors.HandleDirectoryCreate("resolve_data_dir", dir, err)
	}
	return dir, true, nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%s exists and is not a directory", dir)
	case !errors.Is(err, os.ErrNotExist):
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
