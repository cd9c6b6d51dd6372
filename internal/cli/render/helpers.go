package render

import (
	"math/big"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.English)

// Shared color styles
var (
	idStyle         = color.New(color.Bold)
	itemStyle       = color.New(color.FgBlue)
	addressStyle    = color.New(color.FgWhite)
	amountStyle     = color.New(color.FgGreen, color.Bold)
	timestampStyle  = color.New(color.Faint)
	yayStyle        = color.New(color.FgGreen)
	nayStyle        = color.New(color.FgRed)
	votingStyle     = color.New(color.FgCyan)
	executableStyle = color.New(color.FgYellow)
	executedStyle   = color.New(color.Faint)
	sectionStyle    = color.New(color.Bold, color.FgHiWhite)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	// Extract just the message part (after the last colon if it's an
	// error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	return color.New(color.FgYellow).Sprintf("⚠️  %s", msg)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// TitleLabel converts an ALL-CAPS enum value to a display label
func TitleLabel(value string) string {
	return titler.String(strings.ToLower(value))
}

// ShortAddress shortens a hex address for tabular output
func ShortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// FormatAmount renders a token amount, or "-" when nil
func FormatAmount(amount *big.Int) string {
	if amount == nil {
		return "-"
	}
	return amount.String()
}
