package api

// A Client identifies the object on whose behalf values are requested. The identity is
// opaque to the resolution machinery but visible to providers, which are free to vary
// their answers based on it.
type Client interface {
	// Name returns a descriptive name for the client. Used in logs and explanations.
	Name() string
}

type namedClient string

// NamedClient returns a Client that carries nothing but a descriptive name.
func NamedClient(name string) Client {
	return namedClient(name)
}

func (c namedClient) Name() string {
	return string(c)
}
