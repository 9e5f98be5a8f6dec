// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package listdiff

import "znkr.io/listdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Limit sets the maximum number of edit operations (insertions and deletions) to report. If the
// shortest edit script needs more operations, the result is truncated: it contains the first n
// operations of the script and [Facts.Truncated] is set.
//
// A negative value removes the limit, this is the default.
func Limit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Limit = n
		return config.Limit
	}
}

// Presorted declares that both inputs are sorted in the order of the comparison function. Sorted
// inputs are compared with a linear merge in O(N) time where N = len(x) + len(y). The merge never
// truncates, [Limit] has no effect with this option.
//
// The result is undefined if either input is not sorted.
func Presorted() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Presorted = true
		return config.Presorted
	}
}
