//go:build rp2350

package hal

// maxGPIO is the highest GPIO on the 80-pin RP2350B (GP47). The QFN-60
// RP2350A stops at GP29; machine rejects the rest there.
const maxGPIO = 47
