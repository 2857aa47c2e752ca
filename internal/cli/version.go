package cli

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

func newVersionCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, build and CPU information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			DisplayVersion(env.Out, env.Version)
			return nil
		},
	}
}

// DisplayVersion prints the version line followed by runtime details.
func DisplayVersion(out io.Writer, version string) {
	fmt.Fprintf(out, "drills %s\n", version)
	fmt.Fprintf(out, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				fmt.Fprintf(out, "  revision: %s\n", s.Value)
			}
		}
	}
	fmt.Fprintf(out, "  cpus:     %d\n", runtime.NumCPU())
	fmt.Fprintf(out, "  features: %s\n", FormatCPUFeatures())
}

// FormatCPUFeatures lists the arithmetic-relevant instruction set extensions
// of the host, or "none" if none are detected.
func FormatCPUFeatures() string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasAVX512F, "avx512f")
		add(cpu.X86.HasBMI2, "bmi2")
		add(cpu.X86.HasADX, "adx")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
	}
	if len(features) == 0 {
		return "none"
	}
	return strings.Join(features, " ")
}
