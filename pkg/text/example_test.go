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

package text_test

import (
	"context"
	"fmt"

	"github.com/walteh/supplement/pkg/text"
)

func ExampleInjector_Inject() {
	inj, err := text.NewInjector("see you", "<p>see you</p>")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := inj.Inject(context.Background(), []byte("<div><div>hi</div></div></body>"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Was Modified: %v\n", result.WasModified)
	fmt.Printf("Reason: %s\n", result.Reason)

	again, _ := inj.Inject(context.Background(), result.ModifiedContent)
	fmt.Printf("Second Pass: %s\n", again.Reason)

	// Output:
	// Was Modified: true
	// Reason: inserted
	// Second Pass: already-supplemented
}
