package main

import (
	"flag"
	"fmt"
	"os"

	bfi "nickandperla.net/bfi"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "Optional TOML config with interpreter defaults and run history settings")
	cellSize   = flag.Uint("cell-size", bfi.DefaultCellBits, "Single cell size in bits")
	memDump    = flag.Bool("memory-dump", false, "Show memory dump at the end of script execution")
	evalCode   = flag.String("eval", "", "Inline Brainfuck code to evaluate instead of a script file")
	profiling  = flag.Bool("profile", false, "Write a CPU profile of the run to the current directory")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: bfi [OPTIONS] <file_name>\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cellBits := *cellSize
	memoryDump := *memDump

	var toolConfig *bfi.ToolConfig
	if *configPath != "" {
		var err error
		if toolConfig, err = bfi.LoadToolConfig(*configPath); err != nil {
			log.Fatalf("Unable to load bfi config: %v", err)
		}
		// Explicit flags win over config file values
		if !set["cell-size"] {
			cellBits = toolConfig.CellBits
		}
		if !set["memory-dump"] {
			memoryDump = toolConfig.MemoryDump
		}
	}

	var source []byte
	if *evalCode != "" {
		source = []byte(*evalCode)
	} else {
		if flag.NArg() < 1 {
			usage()
			os.Exit(2)
		}
		var err error
		if source, err = os.ReadFile(flag.Arg(0)); err != nil {
			log.Fatalf("Unable to read script [%s]: %v", flag.Arg(0), err)
		}
	}

	program, err := bfi.Load(string(source))
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Debugf("Loaded program with [%d] instructions and [%d] bracket pairs", len(program.Ops), len(program.Jumps)/2)

	machine, err := bfi.NewMachine(&bfi.MachineConfig{
		CellBits: cellBits,
		Input:    os.Stdin,
		Output:   os.Stdout,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	result, runErr := machine.Run(program)
	fmt.Println()

	if toolConfig != nil && toolConfig.History != nil {
		persist, err := bfi.NewPersistence(toolConfig.History)
		if err != nil {
			log.Fatalf("Failed to create or initialize Persistence: %v", err)
		}
		record := bfi.NewRunRecord(string(source), cellBits, result, runErr)
		if record.Output == nil {
			record.Output = machine.Output()
		}
		if id, err := persist.Create(record); err != nil {
			log.Errorf("Failed to persist run record: %v", err)
		} else {
			log.Debugf("Persisted run record [%d]", id)
		}
		if err := persist.Shutdown(); err != nil {
			log.Errorf("Failed to shut down persistence: %v", err)
		}
	}

	if runErr != nil {
		log.Fatalf("%v", runErr)
	}

	if memoryDump {
		fmt.Printf("Memory: %v\n", result.Cells)
	}
	log.Debugf("Executed [%d] instructions", result.InstructionCount)
}
