package logging

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"mommy/common"
	"mommy/report"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayCompileError displays the banner, message, and source line of a
// compilation error
func displayCompileError(srcPath string, lines []string, ce *report.CompileError) {
	displayBanner(ce.Kind.Name(), filepath.Base(srcPath))

	if ce.Line == 0 {
		fmt.Println(ce.Kind.Error() + " (at end of file)")
		fmt.Println()
		return
	}

	fmt.Println(ce.Kind.Error())

	// the source line is taken from the file when possible so the original
	// indentation is shown
	text := ce.Text
	if ce.Line <= len(lines) {
		text = strings.ReplaceAll(lines[ce.Line-1], "\t", "    ")
	}

	gutter, carets := sourceSelection(ce.Line, text)

	fmt.Println()
	InfoColorFG.Print(gutter)
	fmt.Println("|  " + text)
	fmt.Print(strings.Repeat(" ", len(gutter)), "|  ")
	ErrorColorFG.Println(carets)
	fmt.Println()
}

// displayBanner displays the banner on top of all compilation errors
func displayBanner(kind, fileName string) {
	fmt.Print("\n\n-- ")
	ErrorStyleBG.Print(kind)
	fmt.Print(" ")

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - len(kind) - 1
	if dashCount < 2 {
		dashCount = 2
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)
}

// sourceSelection computes the line number gutter and the caret underline for
// a single source line.  The underline spans the whole statement.
func sourceSelection(line int, text string) (string, string) {
	gutter := fmt.Sprintf("%-"+strconv.Itoa(len(strconv.Itoa(line))+1)+"v", line)

	trimmed := strings.TrimLeft(text, " ")
	indent := len(text) - len(trimmed)
	carets := strings.Repeat(" ", indent) + strings.Repeat("^", len(strings.TrimRight(trimmed, " ")))

	return gutter, carets
}

// displayPartialOutput displays the C generated before a failure
func displayPartialOutput(code string) {
	WarnColorFG.Println("partial C code generated:")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Print(code)
	fmt.Println(strings.Repeat("-", 40))
}

// -----------------------------------------------------------------------------

// displayHeader displays the transpiler information before starting
func displayHeader(srcPath, mode string) {
	fmt.Print("mommy ")
	InfoColorFG.Print("v" + common.MommyVersion)
	fmt.Print(" -- " + mode + ": ")
	InfoColorFG.Println(filepath.Base(srcPath))
}

// phaseSpinner stores the current phase spinner
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Transpiling")

// displayBeginPhase displays the beginning of a build phase
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a build phase
func displayEndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	if success {
		phaseSpinner.Success(
			currentPhase+strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2),
			fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
		)
	} else {
		phaseSpinner.Fail(currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2))
	}

	phaseSpinner = nil
}

// displayFinished displays the closing message
func displayFinished(success bool, errorCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" errors)")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Println(" error)")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Println(" errors)")
	}
}
