package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	petname "github.com/dustinkirkland/golang-petname"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

func init() {
	// Temp names only need to avoid collisions between runs.
	petname.NonDeterministicMode()
}

// TempPath returns a fresh PNG path in the temp directory with a readable
// random name, like /tmp/bezier-gently-flying-lemur.png.
func TempPath() string {
	name := fmt.Sprintf("bezier-%s.png", petname.Generate(3, "-"))
	return filepath.Join(os.TempDir(), name)
}

// Show prints the PNG at path inline in the terminal. This needs a terminal
// that understands the iTerm image protocol.
func Show(path string, w io.Writer) error {
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrapf(err, "could not display %q", path)
	}
	return nil
}
