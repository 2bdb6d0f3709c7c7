package repository

// ClientStorage is the persistence port for the storefront state containers
// (cart, wishlist). It mirrors browser localStorage: string keys, opaque
// values, full-value overwrite on every Set. Writes are fire-and-forget; a
// failed write is logged by the implementation, never surfaced to the caller.
type ClientStorage interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}
