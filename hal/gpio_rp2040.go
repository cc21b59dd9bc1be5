//go:build rp2040

package hal

// maxGPIO is the highest user GPIO (GP29).
const maxGPIO = 29
