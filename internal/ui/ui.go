package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/GRJX/template-drafter/internal/errors"
	"github.com/GRJX/template-drafter/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	DraftEmoji   = Accent.Sprint("📝")
)

// SmartSpinner is a spinner that can update its message while running.
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner creates a new spinner with an initial message.
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + msg
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(os.Stdout, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(os.Stdout, msg)
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(msg string) {
	fmt.Printf("%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(msg string) {
	fmt.Printf("%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintSectionBanner(title string) {
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("\n%s\n", separator)
	fmt.Printf("%s %s\n", DraftEmoji, Accent.Sprint(title))
	fmt.Printf("%s\n\n", separator)
}

func PrintDuration(msg string, duration time.Duration) {
	durationStr := Dim.Sprintf("(%s)", duration.Round(10*time.Millisecond))
	fmt.Printf("%s %s %s\n", SuccessEmoji, Success.Sprint(msg), durationStr)
}

func PrintKeyValue(key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	fmt.Printf("   %s %s\n", keyColored, valueColored)
}

// HandleAppError displays an application error in a friendly way. If
// translations is nil, English defaults are used.
func HandleAppError(err error, translations ...*i18n.Translations) {
	if err == nil {
		return
	}

	var t *i18n.Translations
	if len(translations) > 0 && translations[0] != nil {
		t = translations[0]
	}

	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		errorColor := color.New(color.FgRed, color.Bold)
		suggestionColor := color.New(color.FgCyan)
		dimColor := color.New(color.FgHiBlack)

		fmt.Println()
		_, _ = errorColor.Printf("❌ %s: %s\n", appErr.Type, appErr.Message)

		if appErr.Err != nil {
			_, _ = dimColor.Printf("   Details: %v\n", appErr.Err)
		}

		if appErr.Suggestion != "" {
			fmt.Println()
			tryPrefix := "💡 Try: "
			if t != nil {
				tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
			}
			_, _ = suggestionColor.Printf("%s", tryPrefix)
			lines := strings.Split(appErr.Suggestion, "\n")
			for i, line := range lines {
				if i == 0 {
					fmt.Println(line)
				} else {
					fmt.Printf("       %s\n", line)
				}
			}
		}
		fmt.Println()

		return
	}

	PrintError(os.Stdout, err.Error())
}
