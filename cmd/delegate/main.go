package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/toyz/delegate/internal/generator"
	"github.com/toyz/delegate/internal/utils"
	"github.com/toyz/delegate/pkg/delegate"
)

func main() {
	// Define command-line flags
	var (
		sourceFlag     = flag.String("source", "", "Source signature in textual notation, e.g. \"(a, b: int, c=nil)\"")
		wrapperFlag    = flag.String("wrapper", "", "Wrapper signature in textual notation, e.g. \"(x, **kwargs)\"")
		docFlag        = flag.String("doc", "", "Documentation string of the source callable")
		ignoreFlag     = flag.String("ignore", "", "Comma-separated source parameter names to exclude from the merge")
		collectorFlag  = flag.String("collector", delegate.DefaultCollectorName, "Name the wrapper's variadic-keyword collector must have")
		positionalFlag = flag.Bool("positional", false, "Keep source positional-or-keyword parameters positional instead of converting them to keyword-only")
		noDocFlag      = flag.Bool("no-doc", false, "Keep the wrapper's own documentation instead of inheriting the source's")
		noDefaultsFlag = flag.Bool("no-defaults", false, "Drop source default values; inherited parameters become required")
		freezeFlag     = flag.Bool("freeze", false, "Generate a concrete forwarding shim for the merged signature")
		nameFlag       = flag.String("name", "", "Function name for the generated shim (required with -freeze)")
		implFlag       = flag.String("impl", "", "Collector-based implementation the shim forwards to (required with -freeze)")
		packageFlag    = flag.String("package", "", "Package name for the generated shim (derived from -out when empty)")
		resultsFlag    = flag.String("results", "", "Comma-separated result types of the implementation, e.g. \"string,error\"")
		outFlag        = flag.String("out", "", "Output file for the generated shim (stdout when empty)")
		verboseFlag    = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag      = flag.Bool("quiet", false, "Only show errors and the final result")
		helpFlag       = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -source <signature> -wrapper <signature> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delegate Signature Merger\n")
		fmt.Fprintf(os.Stderr, "Merges the source callable's parameters into a wrapper that declares a keyword collector.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -source \"(a, b, c)\" -wrapper \"(**kwargs)\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -source \"(b: int, c=nil, *, d)\" -wrapper \"(x, **kwargs)\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -source \"(a, b)\" -wrapper \"(**opts)\" -collector opts -ignore a\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -source \"(mode, perm=nil)\" -wrapper \"(path: string, **kwargs)\" \\\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "      -freeze -name OpenFile -impl openFile -results \"string,error\" -out open_file_gen.go\n")
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	if *sourceFlag == "" || *wrapperFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: both -source and -wrapper signatures are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	source, err := delegate.ParseSignature(*sourceFlag)
	if err != nil {
		diagnostics.Error("Invalid source signature: %v", err)
		os.Exit(1)
	}
	source = source.WithDoc(*docFlag)

	wrapper, err := delegate.ParseSignature(*wrapperFlag)
	if err != nil {
		diagnostics.Error("Invalid wrapper signature: %v", err)
		os.Exit(1)
	}

	opts := []delegate.Option{
		delegate.WithCollectorName(*collectorFlag),
		delegate.WithKeywordOnly(!*positionalFlag),
		delegate.WithPreserveDoc(!*noDocFlag),
		delegate.WithInheritDefaults(!*noDefaultsFlag),
		delegate.WithFreeze(*freezeFlag),
	}
	if *ignoreFlag != "" {
		var names []string
		for _, name := range strings.Split(*ignoreFlag, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		opts = append(opts, delegate.WithIgnore(names...))
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Source:  %s", source)
		diagnostics.List("Wrapper: %s", wrapper)
		diagnostics.List("Collector: %s", *collectorFlag)
		if *ignoreFlag != "" {
			diagnostics.List("Ignored: %s", *ignoreFlag)
		}
	}

	merged, err := delegate.Merge(source, wrapper, delegate.NewConfig(opts...))
	if err != nil {
		diagnostics.Error("Merge failed: %v", err)
		for _, hint := range suggestions(err) {
			diagnostics.List("hint: %s", hint)
		}
		os.Exit(1)
	}

	diagnostics.Result("%s", merged)
	if merged.Doc != "" {
		diagnostics.Verbose("Documentation: %s", merged.Doc)
	}

	if !*freezeFlag {
		return
	}

	if *nameFlag == "" || *implFlag == "" {
		diagnostics.Error("-freeze requires both -name and -impl")
		os.Exit(1)
	}

	spec := generator.ShimSpec{
		Package:   *packageFlag,
		FuncName:  *nameFlag,
		ImplName:  *implFlag,
		Signature: merged,
		Doc:       merged.Doc,
	}
	if *resultsFlag != "" {
		for _, result := range strings.Split(*resultsFlag, ",") {
			if result = strings.TrimSpace(result); result != "" {
				spec.Results = append(spec.Results, result)
			}
		}
	}

	gen := generator.New()
	if *outFlag == "" {
		code, err := gen.Generate(spec)
		if err != nil {
			diagnostics.Error("Shim generation failed: %v", err)
			os.Exit(1)
		}
		fmt.Print(string(code))
		return
	}

	if err := gen.WriteFile(spec, *outFlag); err != nil {
		diagnostics.Error("Shim generation failed: %v", err)
		os.Exit(1)
	}
	diagnostics.Success("Generated %s", *outFlag)
}

// suggestions extracts fix hints from delegate errors
func suggestions(err error) []string {
	if hinted, ok := err.(interface{ Suggestions() []string }); ok {
		return hinted.Suggestions()
	}
	return nil
}
