package interfaces

// IImageURLBuilder builds the decorative image reference stored on a menu item.
type IImageURLBuilder interface {
	Build(name string) string
}
