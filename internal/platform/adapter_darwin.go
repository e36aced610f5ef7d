package platform

// NewAdapter returns the adapter compiled for this OS
func NewAdapter() Adapter {
	return NewDarwinAPI()
}
