package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/kr/pretty"

	"mommy/build"
	"mommy/common"
	"mommy/config"
	"mommy/logging"
	"mommy/report"
	"mommy/sem"
	"mommy/toolchain"
)

// Build modes selected by subcommand
const (
	modeEmit  = "emit"
	modeBuild = "build"
	modeRun   = "run"
)

// Execute runs the main `mommy` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("mommy", "mommy transpiles MommyLang programs to C", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the transpiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	emitCmd := cli.AddSubcommand(modeEmit, "transpile a source file to C", true)
	emitCmd.AddPrimaryArg("file", "the path to the .mommy file", true)
	emitCmd.AddStringArg("config", "c", "the path to a config file", false)
	emitCmd.AddFlag("debug", "d", "dump the symbol table after transpiling")

	buildCmd := cli.AddSubcommand(modeBuild, "transpile and compile a source file", true)
	buildCmd.AddPrimaryArg("file", "the path to the .mommy file", true)
	buildCmd.AddStringArg("config", "c", "the path to a config file", false)
	buildCmd.AddFlag("debug", "d", "dump the symbol table after transpiling")
	buildCmd.AddFlag("keep-c", "k", "keep the generated C file")

	runCmd := cli.AddSubcommand(modeRun, "build and run a source file", true)
	runCmd.AddPrimaryArg("file", "the path to the .mommy file", true)
	runCmd.AddStringArg("config", "c", "the path to a config file", false)
	runCmd.AddFlag("debug", "d", "dump the symbol table after transpiling")
	runCmd.AddFlag("keep-c", "k", "keep the generated C file")

	cli.AddSubcommand("version", "print the MommyLang version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(1)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case modeEmit, modeBuild, modeRun:
		logging.Initialize(result.Arguments["loglevel"].(string))
		execBuildCommand(subcmdName, subResult)

		logging.LogFinished()
		if !logging.ShouldProceed() {
			os.Exit(1)
		}
	case "version":
		logging.PrintInfoMessage("Mommy Version", common.MommyVersion)
	}
}

// execBuildCommand executes one of the build subcommands.  All errors are
// logged: the caller checks the logger to decide the exit status.
func execBuildCommand(mode string, result *olive.ArgParseResult) {
	srcRelPath, _ := result.PrimaryArg()
	srcPath, err := filepath.Abs(srcRelPath)
	if err != nil {
		logging.LogStdError("Path Error", err)
		return
	}

	conf, err := loadConfig(result, srcPath)
	if err != nil {
		logging.LogStdError("Config Error", err)
		return
	}

	if result.HasFlag("keep-c") {
		conf.KeepC = true
	}

	logging.LogHeader(srcPath, mode)

	cPath, ok := transpile(srcPath, conf, result.HasFlag("debug"))
	if !ok || mode == modeEmit {
		return
	}

	exePath, ok := compileNative(cPath, conf)
	if !ok || mode == modeBuild {
		return
	}

	runProgram(exePath)
}

// loadConfig loads the config file given on the command line or, if none is
// given, the config file next to the source.
func loadConfig(result *olive.ArgParseResult, srcPath string) (*config.Config, error) {
	if confPath, ok := result.Arguments["config"]; ok {
		return config.LoadConfigFile(confPath.(string))
	}

	return config.LoadConfig(filepath.Dir(srcPath))
}

// -----------------------------------------------------------------------------

// transpile converts a source file to C and writes it to disk.  It returns the
// path of the C file.
func transpile(srcPath string, conf *config.Config, debug bool) (string, bool) {
	logging.LogBeginPhase("Transpiling")

	lines, err := build.LoadSource(srcPath)
	if err != nil {
		logging.LogStdError("Source Error", err)
		return "", false
	}

	c := build.NewCompiler(conf.Lang)
	unit, err := c.Compile(lines)
	if err != nil {
		var ce *report.CompileError
		if errors.As(err, &ce) {
			logging.LogCompileError(srcPath, lines, ce)
		} else {
			logging.LogStdError("Compile Error", err)
		}

		logging.LogPartialOutput(unit.Render())
		return "", false
	}

	cPath := build.OutputPath(srcPath, conf.OutputDir)
	if err := build.WriteOutput(cPath, unit.Render()); err != nil {
		logging.LogStdError("Output Error", err)
		return "", false
	}

	logging.LogEndPhase()

	if debug {
		dumpSymbols(c.Symbols())
	}

	logging.LogInfo("C File", cPath)
	return cPath, true
}

// dumpSymbols prints every declared variable and its type
func dumpSymbols(symbols *sem.SymbolTable) {
	dump := make(map[string]sem.DataType, symbols.Len())
	for _, name := range symbols.Names() {
		dump[name], _ = symbols.Lookup(name)
	}

	logging.PrintInfoMessage("Symbols", pretty.Sprint(dump))
}

// compileNative runs the native C compiler on a generated file.  It returns the
// path of the executable.
func compileNative(cPath string, conf *config.Config) (string, bool) {
	logging.LogBeginPhase("Compiling")

	exePath := toolchain.ExecutablePath(cPath)
	if err := toolchain.Compile(conf.CC, conf.CCFlags, cPath, exePath); err != nil {
		logging.LogStdError("Native Compile Error", err)
		return "", false
	}

	// remove the intermediate file to avoid making a mess in the user's
	// directory
	if !conf.KeepC {
		if err := os.Remove(cPath); err != nil {
			logging.LogWarning("Cleanup", "failed to delete generated C file: "+err.Error())
		}
	}

	logging.LogEndPhase()
	logging.LogInfo("Executable", exePath)
	return exePath, true
}

// runProgram runs a built executable attached to the terminal.  No spinner is
// shown while it runs since the program owns the console.
func runProgram(exePath string) {
	logging.LogInfo("Running", filepath.Base(exePath))

	if err := toolchain.Run(exePath, os.Stdin, os.Stdout, os.Stderr); err != nil {
		logging.LogStdError("Program Error", err)
	}
}
