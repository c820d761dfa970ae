// Package cpu reports which vector instruction sets the host provides.
//
// Registry entries name the level their kernels are built for and are only
// selected when the host supports it. The host is probed once per process.
package cpu

import "sync"

// SIMDLevel is the instruction set a kernel is compiled against.
type SIMDLevel int

const (
	// SIMDNone runs on any processor.
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX2
	SIMDNEON
)

var levelNames = [...]string{
	SIMDNone: "None",
	SIMDSSE2: "SSE2",
	SIMDAVX2: "AVX2",
	SIMDNEON: "NEON",
}

func (s SIMDLevel) String() string {
	if s < 0 || int(s) >= len(levelNames) {
		return "Unknown"
	}
	return levelNames[s]
}

// Features is the host capability set used for kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric makes every level other than SIMDNone unsupported.
	ForceGeneric bool

	Architecture string
}

var (
	probeOnce sync.Once
	probed    Features

	overrideMu sync.RWMutex
	override   *Features
)

// DetectFeatures returns the host features, or the override installed with
// SetForcedFeatures.
func DetectFeatures() Features {
	overrideMu.RLock()
	o := override
	overrideMu.RUnlock()
	if o != nil {
		return *o
	}

	probeOnce.Do(func() { probed = probe() })
	return probed
}

// SetForcedFeatures replaces detection until ResetDetection is called.
func SetForcedFeatures(f Features) {
	overrideMu.Lock()
	override = &f
	overrideMu.Unlock()
}

// ResetDetection drops an override installed with SetForcedFeatures.
func ResetDetection() {
	overrideMu.Lock()
	override = nil
	overrideMu.Unlock()
}

// Supports reports whether a kernel built for level may run under features.
func Supports(features Features, level SIMDLevel) bool {
	switch {
	case level == SIMDNone:
		return true
	case features.ForceGeneric:
		return false
	case level == SIMDSSE2:
		return features.HasSSE2
	case level == SIMDAVX2:
		return features.HasAVX2
	case level == SIMDNEON:
		return features.HasNEON
	}
	return false
}

// BestLevel returns the widest level features support.
func BestLevel(features Features) SIMDLevel {
	for _, level := range []SIMDLevel{SIMDAVX2, SIMDSSE2, SIMDNEON} {
		if Supports(features, level) {
			return level
		}
	}
	return SIMDNone
}
