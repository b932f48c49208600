package parameter

// Camera bob defaults
// Amplitude and frequency are gains handed to the camera noise generator
const (
	BobFrequency = 1.0
	BobAmplitude = 0.1
	BobSmoothing = 10.0
)
