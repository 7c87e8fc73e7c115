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
	"os"

	"gitlab.com/tozd/go/errors"
)

// 💾 FileManager reads and rewrites listing pages
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
}

// osFileManager is the FileManager backed by the local disk
type osFileManager struct{}

// NewOSFileManager returns a FileManager that works on the local disk
func NewOSFileManager() FileManager {
	return osFileManager{}
}

func (osFileManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile overwrites path in place. Existing permission bits are kept.
func (osFileManager) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}
