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

package rebrand

import "github.com/walteh/rebrand/pkg/text"

// 🎯 DefaultPattern selects the blog documents to rebrand, relative to the run root
const DefaultPattern = "app/blog/**/page.mdx"

const (
	OldProductName = "Malti Tool Platform"
	NewProductName = "DvTools"

	OldDomain = "maltitoolplatform.com"
	NewDomain = "dvtools.in"
)

// 📦 DefaultRules returns the fixed replacement table, in application order.
// The product rule runs first, so `author: "Malti Tool Platform Team"` becomes
// `author: "DvTools Team"` without a dedicated rule.
func DefaultRules() []text.ReplacementRule {
	return []text.ReplacementRule{
		{FromText: OldProductName, ToText: NewProductName},
		{FromText: OldDomain, ToText: NewDomain},
	}
}
