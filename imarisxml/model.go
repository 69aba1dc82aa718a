package imarisxml

// ChannelInfo décrit un canal d'acquisition d'une image Imaris multi-canaux.
// L'ordre des canaux dans une liste est significatif : il reproduit l'ordre
// d'acquisition tel qu'il apparaît dans le XML.
type ChannelInfo struct {
	Name        string
	Description string

	// Color holds a single display color, ColorTable a color lookup table
	// reference. Components are normalized to [0,1]; in the XML they are
	// stored as 0-255 integers. Exactly one of the two must be set, a nil
	// slice meaning absent.
	Color      []float64
	ColorTable []float64

	// Range is the display intensity window [min, max].
	Range [2]float64

	// Alpha is the channel opacity.
	Alpha float64

	// Gamma is the optional display gamma correction, nil when the channel
	// does not define one.
	Gamma *float64
}

// HasColor reports whether the channel carries a direct display color.
func (c *ChannelInfo) HasColor() bool {
	return c.Color != nil
}

// HasColorTable reports whether the channel carries a color-table reference.
func (c *ChannelInfo) HasColorTable() bool {
	return c.ColorTable != nil
}

// HasGamma reports whether the channel defines a gamma correction.
func (c *ChannelInfo) HasGamma() bool {
	return c.Gamma != nil
}

// SetGamma sets the channel's gamma correction value.
func (c *ChannelInfo) SetGamma(gamma float64) {
	c.Gamma = &gamma
}

// UnsetGamma removes the gamma correction from the channel.
func (c *ChannelInfo) UnsetGamma() {
	c.Gamma = nil
}
