// Package localstore is the on-device key-value storage capability.
// Callers serialize values themselves (JSON strings throughout).
package localstore

type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
