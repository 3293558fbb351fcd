package config

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features summarises the CPU capabilities that influence thresholds.
type Features struct {
	// WideMultiply reports a fast carry-chain multiply (BMI2 MULX with ADX
	// on amd64).
	WideMultiply bool
	// Vector reports AVX2 on amd64 or ASIMD on arm64.
	Vector bool
	// NumCPU is runtime.NumCPU at detection time.
	NumCPU int
}

// DetectFeatures reads the CPU feature flags of the running machine.
func DetectFeatures() Features {
	f := Features{NumCPU: runtime.NumCPU()}
	switch runtime.GOARCH {
	case "amd64":
		f.WideMultiply = cpu.X86.HasBMI2 && cpu.X86.HasADX
		f.Vector = cpu.X86.HasAVX2
	case "arm64":
		f.Vector = cpu.ARM64.HasASIMD
	}
	return f
}
