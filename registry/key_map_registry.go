/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// Key map registry: associates a Go type with its datastore key templates
// (PK, SK, etc.). Populated during initialization, read for the process
// lifetime.

var (
	keyMapRegistry = make(map[reflect.Type]map[string]string)
	keyMapMu       sync.RWMutex
)

// RegisterKeyMap associates type T with a set of key templates, for example
// {"PK": "PLAYER#{Id}", "SK": "PROFILE"}.
func RegisterKeyMap[T any](keyMap map[string]string) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	keyMapMu.Lock()
	defer keyMapMu.Unlock()
	keyMapRegistry[t] = keyMap
}

// GetKeyMap retrieves the key map for type T, if any.
func GetKeyMap[T any]() (map[string]string, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	keyMapMu.RLock()
	defer keyMapMu.RUnlock()
	m, ok := keyMapRegistry[t]
	return m, ok
}
