package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/mindburn-labs/ledgercore/pkg/config"
	"github.com/mindburn-labs/ledgercore/pkg/eventbuffer"
	"github.com/mindburn-labs/ledgercore/pkg/interp"
)

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the entrypoint, kept separate from main for testability, mirroring
// cmd/helm's Run(args, stdout, stderr) int shape.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{}))

	if len(args) < 2 {
		printUsage(stdout)
		return 0
	}

	switch args[1] {
	case "buffer":
		return runBufferDemo(cfg, logger, stdout)
	case "drive":
		return runDriveDemo(logger, stdout)
	case "help", "--help", "-h":
		printUsage(stdout)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command: %s\n", args[1])
		printUsage(stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: ledgerbuf <buffer|drive|help>")
	_, _ = fmt.Fprintln(w, "  buffer  push a handful of events and slice them back out")
	_, _ = fmt.Fprintln(w, "  drive   drive a small suspendable computation against in-memory resolvers")
}

func runBufferDemo(cfg *config.Config, logger *slog.Logger, stdout io.Writer) int {
	sink := eventbuffer.NoopSink{}
	buf := eventbuffer.New[int, string](cfg.MaxBufferSize, cfg.MaxBufferedChunkSize, "ledgerbuf-demo", sink)

	for i := 1; i <= 5; i++ {
		event := fmt.Sprintf("event-%s", uuid.New().String())
		if err := buf.Push(i, event); err != nil {
			logger.Error("push failed", "offset", i, "error", err)
			return 1
		}
	}

	identity := func(e string) (string, bool) { return e, true }
	slice := eventbuffer.Slice[int, string, string](buf, 2, 5, identity)

	switch s := slice.(type) {
	case eventbuffer.Inclusive[int, string]:
		for _, item := range s.Items {
			_, _ = fmt.Fprintf(stdout, "offset=%d value=%s\n", item.Offset, item.Value)
		}
	case eventbuffer.LastBufferChunkSuffix[int, string]:
		_, _ = fmt.Fprintf(stdout, "suffix starting after %d, %d items buffered\n", s.BufferedStartExclusive, len(s.Items))
	}
	return 0
}

func runDriveDemo(logger *slog.Logger, stdout io.Writer) int {
	registry := interp.NewPackageRegistry()
	_ = registry.Add(&interp.Package{PackageID: "greeter", Name: "greeter", Version: "1.0.0"})

	computation := interp.Bind(
		interp.NeedPackageOf[string]("greeter@^1.0.0", func(pkg *interp.Package) interp.Result[string] {
			return interp.Done[string]{Value: pkg.Name}
		}),
		func(name string) interp.Result[string] {
			return interp.Done[string]{Value: "hello, " + name}
		},
	)

	greeting, err := interp.Drive[string](computation, interp.Resolvers{
		Packages: registry.Packages(),
	})
	if err != nil {
		logger.Error("drive failed", "error", err)
		return 1
	}

	_, _ = fmt.Fprintln(stdout, greeting)
	return 0
}
