package component

// BobComponent holds the noise gains currently applied to the camera
type BobComponent struct {
	Amplitude float64
	Frequency float64
}
