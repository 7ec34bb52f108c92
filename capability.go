package llmcatalog

// Capability represents a model's features or modalities using bitmasks.
type Capability uint64

const (
	// Modalities (0-15 bit)
	ModalityTextIn Capability = 1 << iota
	ModalityTextOut
	ModalityImageIn
)

const (
	// Features (16-31 bit)

	// CapPricing is set when the tool reported at least one price.
	CapPricing Capability = 1 << (16 + iota)
)

// Has checks if the capability set contains the given capability.
func (c Capability) Has(other Capability) bool {
	return c&other != 0
}

// String lists the set capabilities, e.g. "text-in|text-out|image-in".
func (c Capability) String() string {
	names := []struct {
		c    Capability
		name string
	}{
		{ModalityTextIn, "text-in"},
		{ModalityTextOut, "text-out"},
		{ModalityImageIn, "image-in"},
		{CapPricing, "pricing"},
	}
	s := ""
	for _, n := range names {
		if c&n.c == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	if s == "" {
		return "none"
	}
	return s
}
