package reader

// Reader yields the raw lines of an input resource in order.
type Reader interface {
	Read() ([]string, error)
}
