// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// rootExists reports whether root is an existing directory. A root that is a
// plain file counts as missing.
func rootExists(root string) (bool, error) {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Errorf("checking root %s: %w", root, err)
	}
	return info.IsDir(), nil
}

// 🚶 walkRoot calls fn for every file under root that matches pattern.
// Directory read errors abort the walk.
func walkRoot(ctx context.Context, root, pattern string, fn func(path string) error) error {
	return doublestar.GlobWalk(os.DirFS(root), pattern, func(rel string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(filepath.Join(root, filepath.FromSlash(rel)))
	}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
}
