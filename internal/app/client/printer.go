package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"resepnusantara/internal/domain/keyed"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Printer печатает результаты команд текстом или JSON
type Printer struct {
	w    io.Writer
	json bool

	title   *color.Color
	success *color.Color
	warn    *color.Color
	muted   *color.Color
}

// NewPrinter включает цвет, только если w - терминал
func NewPrinter(w io.Writer, jsonOutput bool) *Printer {
	p := &Printer{
		w:       w,
		json:    jsonOutput,
		title:   color.New(color.Bold, color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		muted:   color.New(color.Faint),
	}

	tty := false
	if f, ok := w.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	for _, c := range []*color.Color{p.title, p.success, p.warn, p.muted} {
		if tty {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) JSON() bool {
	return p.json
}

// Emit печатает v как JSON в режиме --json, иначе вызывает text
func (p *Printer) Emit(v any, text func()) error {
	if !p.json {
		text()
		return nil
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) Title(format string, args ...any) {
	p.title.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Muted(format string, args ...any) {
	p.muted.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.w, "✓ "+format+"\n", args...)
}

func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.w, "⚠️  "+format+"\n", args...)
}

// Status предупреждает, если документ прочитан или записан не полностью.
// В режиме --json статус уже входит в вывод.
func (p *Printer) Status(s keyed.Status) {
	if p.json {
		return
	}
	switch s {
	case keyed.StatusOK, keyed.StatusAbsent:
	case keyed.StatusCorrupt:
		p.Warn("сохраненные данные повреждены, показаны значения по умолчанию")
	case keyed.StatusUnavailable:
		p.Warn("хранилище недоступно, показаны значения по умолчанию")
	case keyed.StatusWriteFailed:
		p.Warn("изменения не сохранены, показано последнее сохраненное состояние")
	default:
		p.Warn("неизвестный статус хранилища: %s", s)
	}
}

// Stars рисует оценку звездочками: 4 -> ★★★★☆
func Stars(rating int) string {
	rating = max(0, min(rating, 5))
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
