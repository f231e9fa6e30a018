//go:build !unix

package static

import (
	"errors"
	"io/fs"
)

func errorCode(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
