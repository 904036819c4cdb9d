package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var out io.Writer = os.Stdout

// SetOutput redirects every print helper and returns a func restoring the previous writer.
func SetOutput(w io.Writer) func() {
	prev := out
	out = w
	return func() { out = prev }
}

// Output returns the writer print helpers currently use.
func Output() io.Writer {
	return out
}

func Title(text string) {
	fmt.Fprintln(out, TitleStyle.Render(text))
}

func Success(text string) {
	fmt.Fprintln(out, SuccessStyle.Render("✓ "+text))
}

func Error(text string) {
	fmt.Fprintln(out, ErrorStyle.Render("✗ "+text))
}

func Warning(text string) {
	fmt.Fprintln(out, WarningStyle.Render("! "+text))
}

// Dim prints secondary text, indented.
func Dim(text string) {
	fmt.Fprintln(out, DimStyle.Render("  "+text))
}

func Code(text string) {
	fmt.Fprintln(out, CodeStyle.Render(text))
}

func Command(text string) {
	fmt.Fprintln(out, CommandStyle.Render(text))
}

func Line() {
	fmt.Fprintln(out)
}

func Print(text string) {
	fmt.Fprintln(out, text)
}

func Printf(format string, args ...any) {
	fmt.Fprintf(out, format, args...)
}

// KeyValue prints "  key: value" lines with keys padded to the same width.
func KeyValue(pairs ...[2]string) {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}
	for _, p := range pairs {
		fmt.Fprintf(out, "  %s%s %s\n", p[0]+":", strings.Repeat(" ", width-len(p[0])), p[1])
	}
}

func RenderBold(text string) string {
	return BoldStyle.Render(text)
}

func RenderCode(text string) string {
	return CodeStyle.Render(text)
}

func RenderDim(text string) string {
	return DimStyle.Render(text)
}

func RenderAccent(text string) string {
	return AccentStyle.Render(text)
}

func RenderCommand(text string) string {
	return CommandStyle.Render(text)
}
