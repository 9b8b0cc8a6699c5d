// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

// GF_101 is the small prime field of order 101.
var GF_101 = Config{"GF_101", 6, 101}

// KOALABEAR_16 corresponds to the KoalaBear field.
var KOALABEAR_16 = Config{"KOALABEAR_16", 30, 0}

// BLS12_377 corresponds to the scalar field of the BLS12-377 curve.
var BLS12_377 = Config{"BLS12_377", 252, 0}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	GF_101,
	KOALABEAR_16,
	BLS12_377,
}

// Config provides a simple mechanism for identifying a field by name, such
// as from the command line.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// Maximum field bandwidth available in the field.  That is, the largest n
	// such that every n-bit value is a field element.
	BandWidth uint
	// Number of elements in the field, or zero if the field is too large for
	// exhaustive enumeration.
	Enumerable uint
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}

// Names returns the names of all supported fields.
func Names() []string {
	names := make([]string, len(FIELD_CONFIGS))
	//
	for i, c := range FIELD_CONFIGS {
		names[i] = c.Name
	}
	//
	return names
}
