// Package store holds the shopper-side state containers: cart, favorites and theme.
//
// Containers are plain values owned by the caller. Every mutation returns the new
// state and hands it to the container's ChangeFunc, which is where persistence is
// attached. Containers are not safe for concurrent use; callers serialize access
// per shopper.
package store

// ChangeFunc receives a copy of the state after every mutation.
type ChangeFunc[T any] func(state T)

// Namespaces under which each container's state is persisted.
const (
	CartNamespace      = "khaleed-cart"
	FavoritesNamespace = "khaleed-favorites"
	ThemeNamespace     = "khaleed-theme"
)
