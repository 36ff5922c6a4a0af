// Package cpu detects the SIMD capabilities used to pick reduction kernels.
//
// Detection runs once, on first use, and is cached. Tests can force a
// feature set to exercise specific kernel selections deterministically.
package cpu

import "sync"

// SIMDLevel identifies a SIMD instruction set requirement for a kernel.
type SIMDLevel int

const (
	// SIMDNone requires no SIMD support (portable pure Go).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 requires x86-64 SSE2 (part of the amd64 baseline).
	SIMDSSE2

	// SIMDAVX2 requires x86-64 AVX2.
	SIMDAVX2

	// SIMDNEON requires ARM Advanced SIMD (NEON).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables all SIMD-gated kernels (for testing).
	ForceGeneric bool

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once

	forcedMu       sync.RWMutex
	forcedFeatures *Features
)

// DetectFeatures returns the CPU features of the current system.
// The first call performs detection; later calls return the cached result.
// Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	forced := forcedFeatures
	forcedMu.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})

	return detectedFeatures
}

// SetForcedFeatures overrides hardware detection. Testing hook only.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features. Testing hook only.
func ResetDetection() {
	forcedMu.Lock()
	forcedFeatures = nil
	forcedMu.Unlock()
}

// Supports reports whether the given features satisfy the SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
