package catalog

// StatusOption is one order status label offered by the backend.
type StatusOption struct {
	Label string
	Value string
}
