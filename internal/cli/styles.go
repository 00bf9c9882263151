package cli

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the interactive loop. The
// styling is cosmetic; the message text is the contract.
type Styles struct {
	// Header styles the cycle banner.
	Header lipgloss.Style
	// Keyword styles the QUIT keyword inside prompts.
	Keyword lipgloss.Style
	// Notice styles user-initiated termination messages.
	Notice lipgloss.Style
	// Error styles validation and I/O failure messages.
	Error lipgloss.Style
	// Result styles the final equation.
	Result lipgloss.Style
}

// DefaultStyles returns the converter's standard presentation: cyan
// header, yellow quit keyword and notices, red errors, green results.
// All bold.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Keyword: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Result:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}
