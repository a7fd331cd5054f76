package mock

import "github.com/decantlabs/decant"

var _ decant.Converter = (*Converter)(nil)

// Converter is a mock implementation of decant.Converter.
type Converter struct {
	ConvertFn func(html string, opts decant.ConvertOptions) (string, error)
}

func (c *Converter) Convert(html string, opts decant.ConvertOptions) (string, error) {
	return c.ConvertFn(html, opts)
}
